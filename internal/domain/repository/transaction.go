package repository

import "context"

// RepositoryFactory creates repository instances bound to one database
// transaction. Only the repositories that participate in atomic multi-step
// flows (scan commit, redemption, referral payout) are exposed here.
type RepositoryFactory interface {
	LedgerRepo() LedgerRepository
	AccountRepo() AccountRepository
	ReferralRepo() ReferralRepository
}

// TransactionManager runs a function within a single database transaction.
// The function receives a factory producing transaction-bound repositories;
// any returned error rolls the transaction back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
