package domain

// Permission is a fine-grained capability or a role that groups several of
// them. Users hold a list of these; roles are expanded through the hierarchy.
type Permission string

// Roles.
const (
	RoleRegular Permission = "regular"
	RoleRoot    Permission = "root"
)

// PermissionAll satisfies every check.
const PermissionAll Permission = "all"

const (
	PermissionCreateCategory  Permission = "createCategory"
	PermissionUpdateCategory  Permission = "updateCategory"
	PermissionDeleteCategory  Permission = "deleteCategory"
	PermissionApproveCategory Permission = "approveCategory"
	PermissionRateCategory    Permission = "rateCategory"

	PermissionCreateQuestion  Permission = "createQuestion"
	PermissionUpdateQuestion  Permission = "updateQuestion"
	PermissionDeleteQuestion  Permission = "deleteQuestion"
	PermissionApproveQuestion Permission = "approveQuestion"
	PermissionRateQuestion    Permission = "rateQuestion"

	PermissionCreateExam               Permission = "createExam"
	PermissionGetExam                  Permission = "getExam"
	PermissionGetExams                 Permission = "getExams"
	PermissionDeleteExam               Permission = "deleteExam"
	PermissionGetExamQuestion          Permission = "getExamQuestion"
	PermissionCreateExamQuestionAnswer Permission = "createExamQuestionAnswer"
	PermissionCreateExamCompletion     Permission = "createExamCompletion"

	PermissionGetActivities Permission = "getActivities"
	PermissionGetUsers      Permission = "getUsers"
	PermissionUpdateUser    Permission = "updateUser"
	PermissionDeleteUser    Permission = "deleteUser"
)

func (p Permission) String() string { return string(p) }

// Owned is implemented by entities that may carry an owner. An entity
// without an owner returns false.
type Owned interface {
	Owner() (ID, bool)
}
