package auth

import (
	"errors"

	"github.com/PhishGuard/PG-Backend/internal/utils"
)

var errSessionNotFound = errors.New("session not found")

type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	sess, ok := Sessions.Get(id)
	if !ok {
		return utils.SessionData{}, errSessionNotFound
	}

	return utils.SessionData{
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}
