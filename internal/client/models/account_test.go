package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	require.True(t, RolePatient.Valid())
	require.True(t, RoleDoctor.Valid())
	require.False(t, Role("admin").Valid())
	require.False(t, Role("").Valid())
}

func TestAccount_Public_StripsSecrets(t *testing.T) {
	a := &Account{
		Id:        "id-1",
		Name:      "Mary",
		Email:     "mary@x.com",
		Role:      RolePatient,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Salt:      []byte("salt"),
		Verifier:  []byte("verifier"),
		Phone:     "555-0100",
	}

	pub := a.Public()
	require.Equal(t, a.Id, pub.Id)
	require.Equal(t, a.Name, pub.Name)
	require.Equal(t, a.Email, pub.Email)
	require.Equal(t, a.Role, pub.Role)
	require.Equal(t, a.CreatedAt, pub.CreatedAt)
	require.Equal(t, a.Phone, pub.Phone)

	// the serialized public view must not leak credential material
	data, err := json.Marshal(pub)
	require.NoError(t, err)
	require.NotContains(t, string(data), "salt")
	require.NotContains(t, string(data), "verifier")
}
