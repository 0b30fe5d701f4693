package usecase

import (
	"context"

	"physrisk-api/internal/auth"
	"physrisk-api/pkg/encrypter"
	"physrisk-api/pkg/scope"
)

// IssueToken validates the credential pair and mints a session token with the
// "osc" access tier for the provisioned test identity.
func (uc *implUsecase) IssueToken(ctx context.Context, input auth.TokenInput) (auth.TokenOutput, error) {
	if input.Email == "" || input.Password == "" {
		return auth.TokenOutput{}, auth.ErrWrongCredentials
	}

	if uc.testUserKey == "" {
		// Full detail stays server-side; the handler maps this to a generic 500.
		uc.l.Error(ctx, "internal.auth.usecase.IssueToken: OSC_TEST_USER_KEY environment variable is not set")
		return auth.TokenOutput{}, auth.ErrServerMisconfigured
	}

	if input.Email != auth.TestUserEmail || !encrypter.CompareSecret(uc.testUserKey, input.Password) {
		uc.l.Infof(ctx, "internal.auth.usecase.IssueToken: credential mismatch for email %q", input.Email)
		return auth.TokenOutput{}, auth.ErrWrongCredentials
	}

	accessToken, err := uc.scopeMgr.CreateToken(input.Email, scope.DataAccessOSC)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	return auth.TokenOutput{AccessToken: accessToken}, nil
}
