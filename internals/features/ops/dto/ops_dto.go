// file: internals/features/ops/dto/ops_dto.go
package dto

// OpsUserFilterRequest — filter daftar user di dashboard ops.
type OpsUserFilterRequest struct {
	FullName              *string `json:"full_name"`
	PhoneNumber           *string `json:"phone_number"`
	Gender                *string `json:"gender" validate:"omitempty,oneof=male female other"`
	IsVerifiedByOps       *bool   `json:"is_verified_by_ops"`
	IsSuspendedByOps      *bool   `json:"is_suspended_by_ops"`
	IsPhoneNumberVerified *bool   `json:"is_phone_number_verified"`
	SignUpDateFrom        *string `json:"sign_up_date_from" validate:"omitempty,datetime=2006-01-02"`
	SignUpDateTo          *string `json:"sign_up_date_to" validate:"omitempty,datetime=2006-01-02"`

	// Khusus tutor
	SignUpChannel                 *string `json:"sign_up_channel" validate:"omitempty,oneof=organic activation campus-ambassador"`
	UndergraduateUniversityID     *uint   `json:"undergraduate_university"`
	IsPersonalInformationComplete *bool   `json:"is_personal_information_complete"`
	IsTeachingPreferencesComplete *bool   `json:"is_teaching_preferences_complete"`
}

// OpsJobFilterRequest — filter RFT / tuition request.
type OpsJobFilterRequest struct {
	Status          *string `json:"status"`
	JobOrigin       *string `json:"job_origin" validate:"omitempty,oneof=direct-request hot-job"`
	IsConfirmed     *bool   `json:"is_confirmed"`
	IsRejectedByOps *bool   `json:"is_rejected_by_ops"`
	TuitionAreaID   *uint   `json:"tuition_area"`
	CreatedFrom     *string `json:"created_from" validate:"omitempty,datetime=2006-01-02"`
	CreatedTo       *string `json:"created_to" validate:"omitempty,datetime=2006-01-02"`
}

// OpsUpdateUserRequest — edit profil user dari dashboard.
type OpsUpdateUserRequest struct {
	FullName         *string `json:"full_name" validate:"omitempty,max=120"`
	Gender           *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Points           *int    `json:"points" validate:"omitempty,min=0"`
	IsSuspendedByOps *bool   `json:"is_suspended_by_ops"`
	IsDeleted        *bool   `json:"is_deleted"`
}

// AddOpsNoteRequest — catatan internal di user/RFT/tuition request.
type AddOpsNoteRequest struct {
	Note string `json:"note" validate:"required,max=2000"`
}

// OpsSendSMSRequest — SMS manual dari dashboard ke satu user.
type OpsSendSMSRequest struct {
	UserUUID string `json:"user_uuid" validate:"required,uuid4"`
	Message  string `json:"message" validate:"required,max=480"`
}

// OpsRFTCreateRequest — ops membuat RFT atas nama parent (request masuk
// lewat telepon/WhatsApp).
type OpsRFTCreateRequest struct {
	ParentUUID string `json:"parent_uuid" validate:"required,uuid4"`
}

// OpsPromoteRFTRequest — target tutor untuk promosi hot job.
type OpsPromoteRFTRequest struct {
	TutorUUID string `json:"tutor_uuid" validate:"required,uuid4"`
}

// OpsUpgradeTutorRequest — premium manual sampai tanggal tertentu.
type OpsUpgradeTutorRequest struct {
	ValidTill string `json:"valid_till" validate:"required,datetime=2006-01-02"`
}
