package repositories

// RepositoryContainer groups all repository implementations for injection.
type RepositoryContainer struct {
	Expense ExpenseReportRepository
	User    UserRepository
}
