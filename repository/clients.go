package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imobcrm/imobcrm_end/utils"
)

// ClientStore Mongo-backed implementation of service.ClientStore. The $inc
// keeps the counter itself atomic per document, but the visit write and the
// counter write remain two separate operations.
type ClientStore struct{}

// ApplyVisitDelta adjusts the client's visit counter
func (ClientStore) ApplyVisitDelta(ctx context.Context, clientID string, delta int, now time.Time) error {
	objID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return fmt.Errorf("formato de id inválido: %w", err)
	}

	set := bson.M{"updatedAt": now}
	if delta > 0 {
		set["ultimaAtualizacao"] = now
	}

	result, err := Collection(ClientsCollection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{
			"$inc": bson.M{"qtdeVisitas": delta},
			"$set": set,
		},
	)
	if err != nil {
		return err
	}

	utils.LogDbOperation("update", ClientsCollection, bson.M{"_id": objID, "delta": delta}, result)
	return nil
}

// TouchLastUpdate refreshes the client's contact recency
func (ClientStore) TouchLastUpdate(ctx context.Context, clientID string, now time.Time) error {
	objID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return fmt.Errorf("formato de id inválido: %w", err)
	}

	result, err := Collection(ClientsCollection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"ultimaAtualizacao": now, "updatedAt": now}},
	)
	if err != nil {
		return err
	}

	utils.LogDbOperation("update", ClientsCollection, bson.M{"_id": objID}, result)
	return nil
}
