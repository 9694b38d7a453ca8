package onboarding

import "github.com/greekrow/chaptergate-backend/internal/domain"

// JoinInput describes a member arriving in the community for the first time.
type JoinInput struct {
	MemberID  string
	ChannelID string
}

func (in JoinInput) Validate() error {
	var errs []domain.FieldError
	if in.MemberID == "" {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if in.ChannelID == "" {
		errs = append(errs, domain.FieldError{Field: "channel_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartInput describes a member pressing the start prompt.
// RequesterID is who pressed it; MemberID is who the prompt was addressed to.
type StartInput struct {
	MemberID    string
	RequesterID string
}

func (in StartInput) Validate() error {
	var errs []domain.FieldError
	if in.MemberID == "" {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if in.RequesterID == "" {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EmailInput describes a member submitting their contact email.
type EmailInput struct {
	MemberID    string
	RequesterID string
	Email       string
}

func (in EmailInput) Validate() error {
	var errs []domain.FieldError
	if in.MemberID == "" {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if in.RequesterID == "" {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DecideInput describes an operator acting on a pending application through
// an embedded approval action.
type DecideInput struct {
	OperatorID  string
	ActionToken string
	Decision    domain.Decision
}

func (in DecideInput) Validate() error {
	var errs []domain.FieldError
	if in.OperatorID == "" {
		errs = append(errs, domain.FieldError{Field: "operator_id", Message: "required"})
	}
	if in.ActionToken == "" {
		errs = append(errs, domain.FieldError{Field: "action_token", Message: "required"})
	}
	if !in.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approve or reject"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AttachmentInput describes a message carrying attachments.
type AttachmentInput struct {
	MemberID       string
	ChannelID      string
	AttachmentURLs []string
}

func (in AttachmentInput) Validate() error {
	var errs []domain.FieldError
	if in.MemberID == "" {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if in.ChannelID == "" {
		errs = append(errs, domain.FieldError{Field: "channel_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
