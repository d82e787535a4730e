package authz

const (
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
	RoleUser     = "user"
)

const (
	AccessPending  = "pending"
	AccessApproved = "approved"
	AccessDenied   = "denied"
)

// Ресурсы, по которым принимаются решения о доступе.
const (
	ResourceUsers      = "users"
	ResourceCourses    = "courses"
	ResourceStudents   = "students"
	ResourceSessions   = "sessions"
	ResourceAttendance = "attendance"
	ResourceActivities = "activities"
)

// Действия над ресурсом.
const (
	ActionRead    = "read"
	ActionWrite   = "write"
	ActionDelete  = "delete"
	ActionPromote = "promote"
	ActionApprove = "approve"
)

// CanManage — единая точка проверки прав: admin и lecturer пишут в
// большинство ресурсов, удаление и управление пользователями — только admin.
func CanManage(role, action, resource string) bool {
	switch action {
	case ActionRead:
		return role == RoleAdmin || role == RoleLecturer || role == RoleUser
	case ActionWrite:
		if resource == ResourceUsers {
			return role == RoleAdmin
		}
		return role == RoleAdmin || role == RoleLecturer
	case ActionDelete, ActionPromote, ActionApprove:
		return role == RoleAdmin
	}
	return false
}

func IsElevated(role string) bool {
	return role == RoleAdmin || role == RoleLecturer
}
