package usecase

import (
	"physrisk-api/internal/auth"
	"physrisk-api/pkg/log"
	"physrisk-api/pkg/scope"
)

type implUsecase struct {
	l           log.Logger
	scopeMgr    scope.Manager
	testUserKey string
}

// New creates the credential-validation use case. testUserKey is the
// operator-provisioned secret (plaintext or bcrypt digest); an empty value is
// reported as a server misconfiguration at issuance time.
func New(l log.Logger, scopeMgr scope.Manager, testUserKey string) auth.UseCase {
	return &implUsecase{
		l:           l,
		scopeMgr:    scopeMgr,
		testUserKey: testUserKey,
	}
}
