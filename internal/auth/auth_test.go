package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Sign_And_Verify_Roundtrip(t *testing.T) {
	req := require.New(t)
	j := NewJWT("test-secret", time.Hour)

	tok, err := j.Sign(42, "alice")
	req.NoError(err)

	claims, err := j.Verify(tok)
	req.NoError(err)
	req.EqualValues(42, claims.UserID)
	req.Equal("alice", claims.Username)
}

func Test_Verify_Rejects_Wrong_Secret(t *testing.T) {
	req := require.New(t)
	tok, err := NewJWT("secret-a", time.Hour).Sign(1, "alice")
	req.NoError(err)

	_, err = NewJWT("secret-b", time.Hour).Verify(tok)
	req.Error(err)
}

func Test_Verify_Rejects_Expired_Token(t *testing.T) {
	req := require.New(t)
	j := NewJWT("test-secret", -time.Minute)
	tok, err := j.Sign(1, "alice")
	req.NoError(err)

	_, err = j.Verify(tok)
	req.Error(err)
}

func Test_Password_Hash_And_Compare(t *testing.T) {
	req := require.New(t)
	hash, err := HashPassword("correct horse battery staple")
	req.NoError(err)
	req.NotEqual("correct horse battery staple", hash)

	req.True(ComparePassword("correct horse battery staple", hash))
	req.False(ComparePassword("wrong", hash))
}

func Test_ValidateRegister(t *testing.T) {
	req := require.New(t)
	req.NoError(ValidateRegister(RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "longenough1"}))
	req.Error(ValidateRegister(RegisterRequest{Username: "alice", Email: "not-an-email", Password: "longenough1"}))
	req.Error(ValidateRegister(RegisterRequest{Username: "al", Email: "alice@example.com", Password: "longenough1"}))
	req.Error(ValidateRegister(RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short"}))
}
