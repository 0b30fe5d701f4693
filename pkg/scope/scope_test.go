package scope

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCreateAndVerifyRoundTrip(t *testing.T) {
	mgr := New(testSecret)

	token, err := mgr.CreateToken("test", DataAccessOSC)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	payload, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.Subject != "test" {
		t.Errorf("subject = %q, want test", payload.Subject)
	}
	if payload.DataAccess != DataAccessOSC {
		t.Errorf("data access = %q, want %q", payload.DataAccess, DataAccessOSC)
	}
	if payload.ID == "" {
		t.Error("expected a token ID")
	}

	if payload.ExpiresAt == nil {
		t.Fatal("expected an expiry claim")
	}
	lifetime := time.Until(payload.ExpiresAt.Time)
	if lifetime < TokenExpirationDuration-time.Minute || lifetime > TokenExpirationDuration+time.Minute {
		t.Errorf("token lifetime = %s, want about %s", lifetime, TokenExpirationDuration)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	mgr := New(testSecret)

	good, err := mgr.CreateToken("test", DataAccessOSC)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	otherKey, err := New("another-secret-key-of-decent-size!!").CreateToken("test", DataAccessOSC)
	if err != nil {
		t.Fatalf("CreateToken with other key: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong signing key", otherKey},
		{"tampered", good + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := mgr.Verify(tt.token); err == nil {
				t.Error("Verify accepted an invalid token")
			}
		})
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	payload := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
		DataAccess: DataAccessOSC,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = New(testSecret).Verify(token)
	if err == nil {
		t.Fatal("Verify accepted an expired token")
	}
	if !IsExpired(err) {
		t.Errorf("IsExpired(%v) = false, want true", err)
	}
}

func TestIsExpiredIgnoresOtherFailures(t *testing.T) {
	_, err := New(testSecret).Verify("not.a.jwt")
	if err == nil {
		t.Fatal("Verify accepted garbage")
	}
	if IsExpired(err) {
		t.Errorf("IsExpired(%v) = true for a non-expiry failure", err)
	}
}

func TestNewPanicsOnEmptySecret(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New accepted an empty signing key")
		}
	}()
	New("")
}

func TestDataAccessContextFallback(t *testing.T) {
	ctx := context.Background()
	if got := GetDataAccessFromContext(ctx); got != DefaultDataAccess {
		t.Errorf("tier = %q, want default %q", got, DefaultDataAccess)
	}

	ctx = SetDataAccessToContext(ctx, "partner")
	if got := GetDataAccessFromContext(ctx); got != "partner" {
		t.Errorf("tier = %q, want partner", got)
	}
}

func TestPayloadContextRoundTrip(t *testing.T) {
	payload := Payload{DataAccess: DataAccessOSC}
	ctx := SetPayloadToContext(context.Background(), payload)

	got, ok := GetPayloadFromContext(ctx)
	if !ok {
		t.Fatal("payload missing from context")
	}
	if got.DataAccess != DataAccessOSC {
		t.Errorf("data access = %q, want %q", got.DataAccess, DataAccessOSC)
	}

	if _, ok := GetPayloadFromContext(context.Background()); ok {
		t.Error("payload reported present in an empty context")
	}
}
