package dto_test

import (
	"testing"

	"fleet/infras/jwt"
	"fleet/internal/domains/auth/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCustomerRequest_ToCustomerModel(t *testing.T) {
	req := dto.RegisterCustomerRequest{
		Email:    "jane@example.com",
		Password: "plaintext-ignored",
		FullName: "Jane Doe",
		Address:  "1 Main St",
	}

	customer := req.ToCustomerModel("Jane", "Doe", "hashed-password")

	assert.NotEmpty(t, customer.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, customer.Email)
	assert.Equal(t, "Jane", customer.Name)
	assert.Equal(t, "Doe", customer.Surname)
	assert.Equal(t, "hashed-password", customer.Password, "expected the hashed password to be stored")
	assert.Equal(t, req.Address, customer.Address)
	assert.Nil(t, customer.BranchID, "expected new customer to be unassigned")
	assert.Equal(t, req.Email, customer.CreatedBy)
	assert.Equal(t, req.Email, customer.ModifiedBy)
	assert.False(t, customer.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}
