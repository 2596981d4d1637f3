package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/imobcrm/imobcrm_end/config"
	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/utils"
)

const (
	TeamMembersCollection     = "teamMembers"
	ClientsCollection         = "clients"
	InteractionsCollection    = "interactions"
	VisitsCollection          = "visits"
	NotificationsCollection   = "notifications"
	PaymentReceiptsCollection = "paymentReceipts"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("falha ao conectar no MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("falha no ping do MongoDB: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return nil
}

// CloseMongoDB closes the MongoDB connection
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("MongoDB disconnect failed")
			return
		}
		utils.Logger.Info().Msg("disconnected from MongoDB")
	}
}

// GetContext returns the context for MongoDB operations
func GetContext() context.Context {
	return ctx
}

// Collection returns the collection with the given name
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// ExecuteDbOperation runs a database operation with retries on transient errors
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("db operation failed, retry (%d/%d)", i+1, retries)

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError reports whether the error is worth retrying
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError reports whether the error looks like a network failure
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections creates any missing collections
func InitializeCollections() error {
	collections := []string{
		TeamMembersCollection,
		ClientsCollection,
		InteractionsCollection,
		VisitsCollection,
		NotificationsCollection,
		PaymentReceiptsCollection,
	}

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("falha ao listar coleções: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	for _, collName := range collections {
		if known[collName] {
			continue
		}
		if err := db.CreateCollection(ctx, collName); err != nil {
			return fmt.Errorf("falha ao criar coleção %s: %w", collName, err)
		}
		utils.Logger.Info().Str("collection", collName).Msg("collection created")
	}

	return nil
}

// InitializeAdminAccount creates the bootstrap admin profile when it does not
// exist yet. The admin's own id doubles as its companyId, so the account is
// the root of its tenant.
func InitializeAdminAccount() error {
	cfg := config.LoadConfig()
	coll := db.Collection(TeamMembersCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"email": cfg.InitialAdminEmail})
	if err != nil {
		return fmt.Errorf("falha ao verificar conta de admin: %w", err)
	}
	if count > 0 {
		utils.Logger.Info().Msg("bootstrap admin already exists")
		return nil
	}

	now := time.Now()
	admin := models.TeamMember{
		ID:                 primitive.NewObjectID(),
		Email:              cfg.InitialAdminEmail,
		Nome:               "Administrador",
		Password:           utils.HashPassword("admin123"),
		Role:               models.UserRoleADMIN,
		Ativo:              true,
		SubscriptionStatus: models.SubscriptionTRIAL,
		TrialStart:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	admin.CompanyID = admin.ID.Hex()

	result, err := coll.InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("falha ao criar conta de admin: %w", err)
	}

	utils.LogDbOperation("insert", TeamMembersCollection, bson.M{"email": cfg.InitialAdminEmail}, result)
	utils.Logger.Info().Str("email", cfg.InitialAdminEmail).Msg("bootstrap admin created")
	return nil
}

// FindMemberByID looks up a team member by hex id
func FindMemberByID(id string) (*models.TeamMember, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("formato de id inválido: %w", err)
	}

	var member models.TeamMember
	err = db.Collection(TeamMembersCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("membro da equipe")
		}
		return nil, err
	}

	return &member, nil
}

// GetDatabaseStatus returns per-collection document counts
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		TeamMembersCollection,
		ClientsCollection,
		InteractionsCollection,
		VisitsCollection,
		NotificationsCollection,
		PaymentReceiptsCollection,
	}

	result := make(map[string]interface{})
	for _, collName := range collections {
		count, err := db.Collection(collName).CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("count failed")
			result[collName] = map[string]interface{}{"count": 0, "error": err.Error()}
			continue
		}
		result[collName] = map[string]interface{}{"count": count}
	}

	return result, nil
}
