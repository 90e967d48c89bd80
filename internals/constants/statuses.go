package constants

// Status tuition request (urutan transisi: direct-request/hot-job →
// in-process → waiting-for-parent/waiting-for-tutor → confirmed)
const (
	StatusDirectRequest    = "direct-request"
	StatusHotJob           = "hot-job"
	StatusInProcess        = "in-process"
	StatusWaitingForParent = "waiting-for-parent"
	StatusWaitingForTutor  = "waiting-for-tutor"
	StatusConfirmed        = "confirmed"
)

// Asal job
const (
	JobOriginDirectRequest = "direct-request"
	JobOriginHotJob        = "hot-job"
)

// Tipe user
const (
	UserTypeParent  = "parent"
	UserTypeStudent = "student"
	UserTypeTutor   = "tutor"
)

// Tipe akun ops
const (
	OpsAccountOperations        = "operations"
	OpsAccountAdmin             = "admin"
	OpsAccountActivationManager = "activation-manager"
	OpsAccountCampusAmbassador  = "campus-ambassador"
)

// Tipe akun tutor
const (
	AccountTypeBasic   = "basic"
	AccountTypePremium = "premium"
)

// Sign up channel tutor
const (
	SignUpChannelOrganic    = "organic"
	SignUpChannelActivation = "activation"
	SignUpChannelCampus     = "campus-ambassador"
)
