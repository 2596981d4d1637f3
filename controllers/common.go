package controllers

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/service"
	"github.com/imobcrm/imobcrm_end/utils"
)

// fetchScopedClients loads the clients visible to the session, newest first.
// Sorting happens in application code, mirroring the intake's reliance on
// simple equality queries.
func fetchScopedClients(ctx context.Context, session *utils.Session, extra bson.M) ([]models.Client, error) {
	filter := service.VisibleRecordsFilter(session)
	for k, v := range extra {
		filter[k] = v
	}

	cursor, err := repository.Collection(repository.ClientsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

// fetchScopedInteractions loads the interactions visible to the session,
// newest first by interaction date.
func fetchScopedInteractions(ctx context.Context, session *utils.Session, extra bson.M) ([]models.Interaction, error) {
	filter := service.VisibleRecordsFilter(session)
	for k, v := range extra {
		filter[k] = v
	}

	cursor, err := repository.Collection(repository.InteractionsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []models.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}

	sort.SliceStable(interactions, func(i, j int) bool {
		return interactions[i].Data.After(interactions[j].Data)
	})
	return interactions, nil
}

// fetchScopedVisits loads the visits visible to the session, newest first by
// visit date.
func fetchScopedVisits(ctx context.Context, session *utils.Session, extra bson.M) ([]models.Visit, error) {
	filter := service.VisibleRecordsFilter(session)
	for k, v := range extra {
		filter[k] = v
	}

	cursor, err := repository.Collection(repository.VisitsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var visits []models.Visit
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}

	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Data.After(visits[j].Data)
	})
	return visits, nil
}
