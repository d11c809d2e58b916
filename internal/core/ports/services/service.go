package services

// ServiceContainer groups all service facades for route registration.
type ServiceContainer struct {
	Expense ExpenseSvcFacade
	User    UserSvcFacade
}
