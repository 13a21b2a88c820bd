package application

import "context"

// PasswordHasher abstracts the credential digest capability.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) bool
}

// TokenService signs and verifies bearer tokens carrying the subject
// id and email claims.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (userID, email string, err error)
}

// EmailEnqueuer publishes email jobs for asynchronous delivery.
// Satisfied by helpers.RabbitPublisher.
type EmailEnqueuer interface {
	PublishJSON(ctx context.Context, body any) error
}
