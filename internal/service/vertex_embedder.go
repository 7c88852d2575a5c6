package service

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultVertexModel is the Vertex AI publisher model used when none is configured.
const DefaultVertexModel = "text-embedding-005"

// VertexEmbedder uses a Vertex AI text-embedding publisher model.
type VertexEmbedder struct {
	client    *aiplatform.PredictionClient
	modelName string
}

// NewVertexEmbedder creates a prediction client for projectID/location.
// credentialsFile may be empty to use application default credentials.
func NewVertexEmbedder(ctx context.Context, projectID, location, model, credentialsFile string) (*VertexEmbedder, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for the vertex backend")
	}
	if location == "" {
		location = "us-central1"
	}
	if model == "" {
		model = DefaultVertexModel
	}

	opts := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", location)),
	}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	// Initialize Vertex AI client
	client, err := aiplatform.NewPredictionClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexEmbedder{
		client:    client,
		modelName: fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", projectID, location, model),
	}, nil
}

// Encode implements Embedder. Vertex truncates inputs past the model's token
// limit when autoTruncate is set; opts.MaxLength is not configurable there.
func (v *VertexEmbedder) Encode(ctx context.Context, texts []string, _ EncodeOptions) ([][]float32, error) {
	instances, err := vertexInstances(texts)
	if err != nil {
		return nil, err
	}

	params, err := structpb.NewValue(map[string]interface{}{"autoTruncate": true})
	if err != nil {
		return nil, fmt.Errorf("failed to create parameters: %w", err)
	}

	req := &aiplatformpb.PredictRequest{
		Endpoint:   v.modelName,
		Instances:  instances,
		Parameters: params,
	}

	resp, err := v.client.Predict(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return vertexEmbeddings(resp.GetPredictions())
}

// Close releases the Vertex AI client resources
func (v *VertexEmbedder) Close() error {
	return v.client.Close()
}

// vertexInstances builds one prediction instance per text. task_type
// RETRIEVAL_DOCUMENT matches how stored vectors are usually produced.
func vertexInstances(texts []string) ([]*structpb.Value, error) {
	instances := make([]*structpb.Value, len(texts))
	for i, text := range texts {
		instance, err := structpb.NewStruct(map[string]interface{}{
			"content":   text,
			"task_type": "RETRIEVAL_DOCUMENT",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create instance: %w", err)
		}
		instances[i] = structpb.NewStructValue(instance)
	}
	return instances, nil
}

// vertexEmbeddings extracts predictions[i].embeddings.values.
func vertexEmbeddings(predictions []*structpb.Value) ([][]float32, error) {
	if len(predictions) == 0 {
		return nil, fmt.Errorf("no predictions returned")
	}

	out := make([][]float32, len(predictions))
	for i, p := range predictions {
		embeddings := p.GetStructValue().GetFields()["embeddings"].GetStructValue()
		values := embeddings.GetFields()["values"].GetListValue().GetValues()
		if len(values) == 0 {
			return nil, fmt.Errorf("prediction %d has no embedding values", i)
		}

		// Convert to float32 slice
		vec := make([]float32, len(values))
		for j, v := range values {
			vec[j] = float32(v.GetNumberValue())
		}
		out[i] = vec
	}
	return out, nil
}
