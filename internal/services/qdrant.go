package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"smartrecruit/api/internal/models"
)

// ProfileIndexService stores each analyzed CV's embedding so recruiters can
// search for candidates with similar profiles.
type ProfileIndexService interface {
	InitCollection() error
	UpsertProfile(ctx context.Context, applicationID uuid.UUID, roleName string, embedding []float32) error
	SimilarProfiles(ctx context.Context, applicationID uuid.UUID, limit int) ([]models.SimilarProfile, error)
	DeleteProfile(ctx context.Context, applicationID uuid.UUID) error
}

type profileIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewProfileIndexService(urlStr, apiKey, collectionName string) (ProfileIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &profileIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements ProfileIndexService.
func (q *profileIndexService) InitCollection() error {
	ctx := context.Background()

	// Check if collection exists
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Profile collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertProfile implements ProfileIndexService. The application ID doubles
// as the point ID so a reanalysis replaces the previous vector.
func (q *profileIndexService) UpsertProfile(ctx context.Context, applicationID uuid.UUID, roleName string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(applicationID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"application_id": applicationID.String(),
			"role_name":      roleName,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// SimilarProfiles implements ProfileIndexService. It recommends by stored
// point ID, so the application must have been analyzed and indexed first.
func (q *profileIndexService) SimilarProfiles(ctx context.Context, applicationID uuid.UUID, limit int) ([]models.SimilarProfile, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQueryID(qdrant.NewIDUUID(applicationID.String())),
		Limit:          qdrant.PtrOf(uint64(limit + 1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	var profiles []models.SimilarProfile
	for _, point := range searchResult {
		payload := point.Payload

		var profile models.SimilarProfile
		profile.Score = point.Score

		if appID, ok := payload["application_id"]; ok {
			if val, ok := appID.GetKind().(*qdrant.Value_StringValue); ok {
				profile.ApplicationID = val.StringValue
			}
		}
		if role, ok := payload["role_name"]; ok {
			if val, ok := role.GetKind().(*qdrant.Value_StringValue); ok {
				profile.RoleName = val.StringValue
			}
		}

		// The queried application is its own nearest neighbour.
		if profile.ApplicationID == applicationID.String() {
			continue
		}

		profiles = append(profiles, profile)
		if len(profiles) == limit {
			break
		}
	}

	return profiles, nil
}

// DeleteProfile implements ProfileIndexService.
func (q *profileIndexService) DeleteProfile(ctx context.Context, applicationID uuid.UUID) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points:         qdrant.NewPointsSelector(qdrant.NewIDUUID(applicationID.String())),
	})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
