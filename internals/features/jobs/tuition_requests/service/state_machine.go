// file: internals/features/jobs/tuition_requests/service/state_machine.go
package service

import (
	"errors"

	"yoda_backend/internals/constants"
)

// ErrNotEligible — transisi tidak valid dari status sekarang. Controller
// membalasnya sebagai 404 supaya tidak bocor info status job ke pihak
// yang salah.
var ErrNotEligible = errors.New("not eligible for this transition")

// Aktor konfirmasi.
const (
	ActorTutor  = "tutor"
	ActorParent = "parent"
)

// NextStatusOnAccept — tutor menerima direct request.
func NextStatusOnAccept(current string) (string, error) {
	if current != constants.StatusDirectRequest {
		return "", ErrNotEligible
	}
	return constants.StatusInProcess, nil
}

// NextStatusOnApply — tutor apply ke hot job (copy miliknya sendiri).
func NextStatusOnApply(current string) (string, error) {
	if current != constants.StatusHotJob {
		return "", ErrNotEligible
	}
	return constants.StatusInProcess, nil
}

// NextStatusOnConfirm — konfirmasi dua arah. Pihak pertama menggeser ke
// waiting-for-<pihak lain>, pihak kedua menutup jadi confirmed.
// confirmed=true hanya saat transisi mendarat di status confirmed.
func NextStatusOnConfirm(current, actor string) (next string, confirmed bool, err error) {
	switch actor {
	case ActorTutor:
		switch current {
		case constants.StatusInProcess:
			return constants.StatusWaitingForParent, false, nil
		case constants.StatusWaitingForTutor:
			return constants.StatusConfirmed, true, nil
		}
	case ActorParent:
		switch current {
		case constants.StatusInProcess:
			return constants.StatusWaitingForTutor, false, nil
		case constants.StatusWaitingForParent:
			return constants.StatusConfirmed, true, nil
		}
	}
	return "", false, ErrNotEligible
}

// CanTutorReject — tutor boleh mundur dari status apa pun selama job
// belum confirmed; setelah confirmed pembatalan lewat ops.
func CanTutorReject(current string) bool {
	return current != constants.StatusConfirmed
}
