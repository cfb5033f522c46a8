package tokens_test

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-bankorder/internal/transport/api/tokens"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	key []byte
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) SetupTest() {
	s.key = []byte("super secret key")
}

func (s *AuthTestSuite) TestParseSignatoryToken() {
	token, err := testutils.SignatoryToken(9, time.Hour, s.key)
	s.Require().NoError(err)

	claims, err := tokens.ParseSignatoryToken(token, s.key)
	s.Require().NoError(err)
	s.Equal(int64(9), claims.UserID)
}

func (s *AuthTestSuite) TestExpired() {
	token, err := testutils.SignatoryToken(9, -time.Minute, s.key)
	s.Require().NoError(err)

	_, err = tokens.ParseSignatoryToken(token, s.key)
	s.Require().ErrorIs(err, tokens.ErrTokenExpired)
}

func (s *AuthTestSuite) TestRejected() {
	noUser, err := testutils.SignatoryToken(0, time.Hour, s.key)
	s.Require().NoError(err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokens.SignatoryClaims{UserID: 9}).
		SignedString(s.key)
	s.Require().NoError(err)
	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tokens.SignatoryClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           9,
	}).SignedString(s.key)
	s.Require().NoError(err)

	cases := []struct {
		name  string
		token string
		key   []byte
	}{
		{name: "no user", token: noUser, key: s.key},
		{name: "no expiry", token: noExpiry, key: s.key},
		{name: "other algorithm", token: otherAlg, key: s.key},
		{name: "other key", token: noUser, key: []byte("other key")},
		{name: "garbage", token: "not.a.token", key: s.key},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			claims, parseErr := tokens.ParseSignatoryToken(t.token, t.key)
			s.Nil(claims)
			s.Require().Error(parseErr)
		})
	}
}
