package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// DefaultDestinationParameter is the parameter holding the access logging destination bucket.
const DefaultDestinationParameter = "/secure/s3/logging/destination-bucket"

// NewParameterStore returns a ParameterStore reading with the given client.
func NewParameterStore(cli SSMClient) *ParameterStore {
	return &ParameterStore{cli}
}

// ParameterStore reads values from SSM Parameter Store.
type ParameterStore struct {
	cli SSMClient
}

// String returns the decrypted value of the named parameter.
func (p *ParameterStore) String(ctx context.Context, name string) (string, error) {
	out, err := p.cli.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s: %w", ErrParameterNotFound, name, err)
		}

		return "", fmt.Errorf("getting parameter %s: %w", name, err)
	}

	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyParameter, name)
	}

	return aws.ToString(out.Parameter.Value), nil
}
