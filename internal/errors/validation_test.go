package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("dna_hash", "must be exactly 64 characters")

	s.True(ve.HasErrors())
	s.Equal("validation failed: dna_hash: must be exactly 64 characters; name: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "alice", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("recipient", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", strings.Repeat("a", 50), 50, vb)
	s.NoError(vb.Build())

	errors.ValidateMaxLength("name", strings.Repeat("a", 51), 50, vb)
	s.True(errors.IsInvalidArgument(vb.Build()))
}

func (s *ValidationTestSuite) TestValidateExactLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateExactLength("dna_hash", strings.Repeat("f", 64), 64, vb)
	s.NoError(vb.Build())

	errors.ValidateExactLength("dna_hash", "abc", 64, vb)
	s.Contains(vb.Build().Error(), "must be exactly 64 characters")
}
