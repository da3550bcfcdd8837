package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

func TestBuildOrderAssignments(t *testing.T) {
	t.Parallel()

	t.Run("dense positions follow submitted order", func(t *testing.T) {
		t.Parallel()

		a := primitive.NewObjectID()
		b := primitive.NewObjectID()
		c := primitive.NewObjectID()

		orders, err := buildOrderAssignments([]string{c.Hex(), a.Hex(), b.Hex()})
		require.NoError(t, err)
		require.Equal(t, map[primitive.ObjectID]int64{
			c: 0,
			a: 1,
			b: 2,
		}, orders)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildOrderAssignments(nil)
		require.ErrorIs(t, err, httperr.ErrValidation)
	})

	t.Run("invalid hex rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildOrderAssignments([]string{"not-an-id"})
		require.ErrorIs(t, err, httperr.ErrValidation)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		t.Parallel()

		id := primitive.NewObjectID().Hex()
		_, err := buildOrderAssignments([]string{id, id})
		require.ErrorIs(t, err, httperr.ErrValidation)
	})
}
