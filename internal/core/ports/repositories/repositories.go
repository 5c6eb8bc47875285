package repositories

// RepositoryProvider holds instances of all repository facades, wired once at
// startup and passed into the service layer.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	RoleRepo         RoleRepositoryFacade
	RefreshTokenRepo RefreshTokenRepositoryFacade
}
