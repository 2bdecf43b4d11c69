package state

import (
	"context"
	"errors"
	"testing"

	"remixradio/models"
)

func TestSignUpNormalizesAndSubscribes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	account, err := store.SignUp(ctx, "  Fan@X.Com ", " abc123 ", "")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if account.Email != "fan@x.com" {
		t.Fatalf("account email = %q", account.Email)
	}
	if account.Name != "fan" {
		t.Fatalf("account name = %q, want email local part", account.Name)
	}
	if account.Verified {
		t.Fatal("new account must start unverified")
	}
	if !account.OnMailingList {
		t.Fatal("new account must opt into the mailing list")
	}
	if account.JoinedAt == 0 {
		t.Fatal("expected join timestamp")
	}

	list := store.MailingList()
	if len(list) != 1 || list[0] != "fan@x.com" {
		t.Fatalf("mailing list = %v", list)
	}
}

func TestSignUpRejectsDuplicateWithoutMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.SignUp(ctx, "fan@x.com", "abc123", "MixLover"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if _, err := store.SignUp(ctx, "FAN@X.COM", "different", "Other"); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("duplicate SignUp() error = %v, want ErrAccountExists", err)
	}

	accounts := store.Accounts()
	if len(accounts) != 1 {
		t.Fatalf("registry length = %d after duplicate signup", len(accounts))
	}
	if accounts[0].Passphrase != "abc123" || accounts[0].Name != "MixLover" {
		t.Fatalf("registry mutated by duplicate signup: %+v", accounts[0])
	}
	if list := store.MailingList(); len(list) != 1 {
		t.Fatalf("mailing list = %v, want exactly one entry", list)
	}
}

func TestSignUpValidatesInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"empty email", "", "abc123"},
		{"no at sign", "fanx.com", "abc123"},
		{"empty passphrase", "fan@x.com", "   "},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SignUp(ctx, tt.email, tt.pass, ""); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("SignUp(%q, %q) error = %v, want ErrInvalidInput", tt.email, tt.pass, err)
			}
		})
	}
}

func TestVerifyAccountPreservesCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.SignUp(ctx, "fan@x.com", "abc123", "MixLover")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	verified, err := store.VerifyAccount(ctx, "Fan@X.com")
	if err != nil {
		t.Fatalf("VerifyAccount() error = %v", err)
	}
	if !verified.Verified {
		t.Fatal("expected verified flag to flip")
	}
	if verified.Passphrase != created.Passphrase {
		t.Fatal("verification must not alter the passphrase")
	}
	if verified.JoinedAt != created.JoinedAt {
		t.Fatal("verification must not alter the join timestamp")
	}

	if _, err := store.VerifyAccount(ctx, "ghost@x.com"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("VerifyAccount(ghost) error = %v", err)
	}
}

func TestLoginMatchesVerbatimPassphrase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.SignUp(ctx, "fan@x.com", "abc123", "MixLover"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	account, err := store.Login(ctx, "FAN@x.com", "abc123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if account.Email != "fan@x.com" {
		t.Fatalf("login email = %q", account.Email)
	}
	if account.Verified {
		t.Fatal("expected unverified account; login routes to verify step")
	}

	if _, err := store.Login(ctx, "fan@x.com", "ABC123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login(wrong case pass) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := store.Login(ctx, "ghost@x.com", "abc123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login(unknown email) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateDJ(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	dj, err := store.AuthenticateDJ(ctx, "dj remix kingz", "kingz")
	if err != nil {
		t.Fatalf("AuthenticateDJ() error = %v", err)
	}
	if dj.ID != "dj-1" {
		t.Fatalf("dj id = %q", dj.ID)
	}

	if _, err := store.AuthenticateDJ(ctx, "dj remix kingz", "KINGZ"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("AuthenticateDJ(wrong pass) error = %v", err)
	}
}

func TestDeleteAccountCascadesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.SignUp(ctx, "fan@x.com", "abc123", "MixLover"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if _, err := store.SignUp(ctx, "other@x.com", "zzz", "Other"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if !store.DeleteAccount(ctx, "Fan@X.com") {
		t.Fatal("expected first delete to report removal")
	}
	if store.DeleteAccount(ctx, "fan@x.com") {
		t.Fatal("expected second delete to be a no-op")
	}

	accounts := store.Accounts()
	if len(accounts) != 1 || accounts[0].Email != "other@x.com" {
		t.Fatalf("registry after delete = %+v", accounts)
	}
	list := store.MailingList()
	if len(list) != 1 || list[0] != "other@x.com" {
		t.Fatalf("mailing list after delete = %v", list)
	}
}

func TestPassphraseResetTargets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.SignUp(ctx, "fan@x.com", "abc123", "MixLover"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if err := store.UpdateAccountPassphrase(ctx, "fan@x.com", "newpass"); err != nil {
		t.Fatalf("UpdateAccountPassphrase() error = %v", err)
	}
	if _, err := store.Login(ctx, "fan@x.com", "newpass"); err != nil {
		t.Fatalf("Login() after reset error = %v", err)
	}
	if err := store.UpdateAccountPassphrase(ctx, "ghost@x.com", "x"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("UpdateAccountPassphrase(ghost) error = %v", err)
	}

	if err := store.UpdateDJPassphrase(ctx, "dj.remix.kingz@remixkingz.com", "crown"); err != nil {
		t.Fatalf("UpdateDJPassphrase() error = %v", err)
	}
	if _, err := store.AuthenticateDJ(ctx, "DJ REMIX KINGZ", "crown"); err != nil {
		t.Fatalf("AuthenticateDJ() after reset error = %v", err)
	}
	if err := store.UpdateDJPassphrase(ctx, "ghost@remixkingz.com", "x"); !errors.Is(err, ErrDJNotFound) {
		t.Fatalf("UpdateDJPassphrase(ghost) error = %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	store.SetSession(ctx, models.Session{Email: "fan@x.com", Name: "MixLover", Verified: true, Role: models.RoleListener})
	session, ok := store.Session()
	if !ok || session.Email != "fan@x.com" {
		t.Fatalf("session = %+v ok=%t", session, ok)
	}

	store.ClearSession(ctx)
	if _, ok := store.Session(); ok {
		t.Fatal("expected session to be cleared")
	}

	if got := len(store.Accounts()); got != 0 {
		t.Fatalf("sign-out must not touch accounts, got %d", got)
	}
}
