package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("CharacterRepo").
		Fieldf("MaxQueueSeconds", "must be at most %d", 86400)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: CharacterRepo: is required; MaxQueueSeconds: must be at most 86400",
		err.Error(),
	)
	s.NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}
