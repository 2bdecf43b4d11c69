package state

import (
	"context"
	"strings"

	"remixradio/models"
)

// SignUp registers a new listener account. The account starts unverified,
// opted into the mailing list, and the email joins the mailing list exactly
// once. A duplicate email leaves the registry untouched.
func (s *Store) SignUp(ctx context.Context, email, passphrase, name string) (models.Account, error) {
	email = models.NormalizeEmail(email)
	passphrase = strings.TrimSpace(passphrase)
	if email == "" || !strings.Contains(email, "@") || passphrase == "" {
		return models.Account{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return models.Account{}, ErrAccountExists
		}
	}

	account := models.Account{
		Email:         email,
		Passphrase:    passphrase,
		Name:          models.DisplayNameOrDefault(name, email),
		Verified:      false,
		OnMailingList: true,
		JoinedAt:      s.now().UnixMilli(),
	}
	s.accounts = append(s.accounts, account)
	s.subscribeLocked(email)

	s.persistJSON(ctx, keyAccounts, s.accounts)
	s.persistJSON(ctx, keyMailingList, s.mailingList)
	return account, nil
}

// Login matches an email and passphrase against the account registry. The
// passphrase comparison is verbatim. Callers inspect the returned account's
// Verified flag: an unverified match routes to the verify step rather than
// a session.
func (s *Store) Login(ctx context.Context, email, passphrase string) (models.Account, error) {
	email = models.NormalizeEmail(email)
	passphrase = strings.TrimSpace(passphrase)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email && account.Passphrase == passphrase {
			return account, nil
		}
	}
	return models.Account{}, ErrInvalidCredentials
}

// VerifyAccount flips the verified flag of the account with the given
// email. The passphrase and join timestamp are untouched.
func (s *Store) VerifyAccount(ctx context.Context, email string) (models.Account, error) {
	email = models.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Email == email {
			s.accounts[i].Verified = true
			s.persistJSON(ctx, keyAccounts, s.accounts)
			return s.accounts[i], nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

// UpdateAccountPassphrase sets a new passphrase for a listener account.
func (s *Store) UpdateAccountPassphrase(ctx context.Context, email, passphrase string) error {
	email = models.NormalizeEmail(email)
	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Email == email {
			s.accounts[i].Passphrase = passphrase
			s.persistJSON(ctx, keyAccounts, s.accounts)
			return nil
		}
	}
	return ErrAccountNotFound
}

// DeleteAccount removes a listener account and its mailing-list entry.
// Deleting an absent account is a no-op.
func (s *Store) DeleteAccount(ctx context.Context, email string) bool {
	email = models.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	kept := s.accounts[:0]
	for _, account := range s.accounts {
		if account.Email == email {
			removed = true
			continue
		}
		kept = append(kept, account)
	}
	s.accounts = kept

	keptList := s.mailingList[:0]
	for _, entry := range s.mailingList {
		if entry == email {
			removed = true
			continue
		}
		keptList = append(keptList, entry)
	}
	s.mailingList = keptList

	if removed {
		s.persistJSON(ctx, keyAccounts, s.accounts)
		s.persistJSON(ctx, keyMailingList, s.mailingList)
	}
	return removed
}

// Accounts returns a copy of the account registry.
func (s *Store) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Account(nil), s.accounts...)
}

// MailingList returns a copy of the mailing list.
func (s *Store) MailingList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.mailingList...)
}

// subscribeLocked adds an email to the mailing list if absent. Caller holds
// the mutex.
func (s *Store) subscribeLocked(email string) {
	for _, entry := range s.mailingList {
		if entry == email {
			return
		}
	}
	s.mailingList = append(s.mailingList, email)
}

// AuthenticateDJ matches DJ credentials: case-insensitive name, exact
// passphrase.
func (s *Store) AuthenticateDJ(ctx context.Context, name, passphrase string) (models.DJ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, dj := range s.djs {
		if dj.MatchesCredentials(name, passphrase) {
			return dj, nil
		}
	}
	return models.DJ{}, ErrInvalidCredentials
}

// UpdateDJPassphrase sets a new passphrase for the DJ with the given email.
func (s *Store) UpdateDJPassphrase(ctx context.Context, email, passphrase string) error {
	email = models.NormalizeEmail(email)
	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.djs {
		if models.NormalizeEmail(s.djs[i].Email) == email {
			s.djs[i].Passphrase = passphrase
			s.persistJSON(ctx, keyDJs, s.djs)
			return nil
		}
	}
	return ErrDJNotFound
}

// SetSession installs the active session aggregate.
func (s *Store) SetSession(ctx context.Context, session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	s.persistJSON(ctx, keySession, s.session)
}

// ClearSession wipes the active session, leaving accounts intact.
func (s *Store) ClearSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.persistJSON(ctx, keySession, s.session)
}

// Session returns the active session, if any.
func (s *Store) Session() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}
