package models

import "github.com/pkg/errors"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

var submissionStatusHumanName = map[SubmissionStatus]string{
	SubmissionStatusPending:  "На рассмотрении",
	SubmissionStatusApproved: "Принято",
	SubmissionStatusRejected: "Отклонено",
}

func (s SubmissionStatus) ToHuman() string {
	if human, exist := submissionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal - принятые и отклоненные сдачи не меняют статус повторно
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

func (s SubmissionStatus) Validate() error {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return nil
	}
	return errors.Errorf("неизвестный статус сдачи работы: %v", s)
}

type SubmissionEvent string

const (
	SubmissionEventApprove  SubmissionEvent = "APPROVE"
	SubmissionEventReject   SubmissionEvent = "REJECT"
	SubmissionEventWithdraw SubmissionEvent = "WITHDRAW"
)
