package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

func TestRoleAuthority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ROLE_USER", domain.Role{Name: "user"}.Authority())
	assert.Equal(t, "ROLE_ADMIN", domain.Role{Name: "admin"}.Authority())
}

func TestAuthorities_PreservesOrder(t *testing.T) {
	t.Parallel()

	roles := []domain.Role{{Name: "user"}, {Name: "moderator"}}
	assert.Equal(t, []string{"ROLE_USER", "ROLE_MODERATOR"}, domain.Authorities(roles))
}
