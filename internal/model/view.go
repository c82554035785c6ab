package model

// View — идентификатор экрана приложения
type View string

const (
	ViewMap            View = "map"
	ViewChat           View = "chat"
	ViewLogsStudent    View = "logs-std"
	ViewLogsBusiness   View = "logs-bus"
	ViewSlots          View = "slots"
	ViewDashboardBus   View = "dashboard-bus"
	ViewDashboardCoord View = "dashboard-coord"
	ViewVerifications  View = "verifications"
	ViewProfile        View = "profile"
)

// IsValid проверяет что view известен приложению
func (v View) IsValid() bool {
	switch v {
	case ViewMap, ViewChat, ViewLogsStudent, ViewLogsBusiness, ViewSlots,
		ViewDashboardBus, ViewDashboardCoord, ViewVerifications, ViewProfile:
		return true
	}
	return false
}

// DefaultView возвращает стартовый экран для роли
func DefaultView(role Role) View {
	switch role {
	case RoleBusiness:
		return ViewDashboardBus
	case RoleCoordinator:
		return ViewDashboardCoord
	default:
		return ViewMap
	}
}
