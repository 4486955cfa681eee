package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"signflow-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse represents the paginated response format
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	ownerID      string
	documentID   string
	signerID     string
	fieldID      string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Document steps
	ctx.When(`^I upload a document with title "([^"]*)"$`, fc.iUploadADocumentWithTitle)
	ctx.Given(`^a document exists with title "([^"]*)"$`, fc.aDocumentExistsWithTitle)
	ctx.When(`^I get the document by its ID$`, fc.iGetTheDocumentByItsID)
	ctx.Then(`^the response should contain the document with title "([^"]*)"$`, fc.theResponseShouldContainTheDocumentWithTitle)
	ctx.Then(`^the response should contain the document details$`, fc.theResponseShouldContainTheDocumentDetails)
	ctx.When(`^I list all my documents$`, fc.iListAllMyDocuments)
	ctx.Then(`^the list should contain the document with title "([^"]*)"$`, fc.theListShouldContainTheDocumentWithTitle)
	ctx.When(`^I soft delete the document$`, fc.iSoftDeleteTheDocument)
	ctx.When(`^I request finalization of the document$`, fc.iRequestFinalizationOfTheDocument)

	// Signer steps
	ctx.When(`^I add a signer with name "([^"]*)" and email "([^"]*)"$`, fc.iAddASignerWithNameAndEmail)
	ctx.Given(`^a signer exists with name "([^"]*)" and email "([^"]*)"$`, fc.aSignerExistsWithNameAndEmail)
	ctx.When(`^I list all signers$`, fc.iListAllSigners)
	ctx.Then(`^the list should contain the signer with email "([^"]*)"$`, fc.theListShouldContainTheSignerWithEmail)
	ctx.When(`^I remove the signer$`, fc.iRemoveTheSigner)

	// Field steps
	ctx.When(`^I place a "([^"]*)" field on page (\d+) at position (\d+), (\d+)$`, fc.iPlaceAFieldOnPageAtPosition)
	ctx.Given(`^a "([^"]*)" field exists on page (\d+)$`, fc.aFieldExistsOnPage)
	ctx.Then(`^the response should contain the field details$`, fc.theResponseShouldContainTheFieldDetails)
	ctx.When(`^I move the field to position (\d+), (\d+)$`, fc.iMoveTheFieldToPosition)
	ctx.Then(`^the field position should be (\d+), (\d+)$`, fc.theFieldPositionShouldBe)
	ctx.When(`^I list the fields on page (\d+)$`, fc.iListTheFieldsOnPage)
	ctx.Then(`^the list should contain (\d+) fields?$`, fc.theListShouldContainFields)
	ctx.When(`^I complete the field with value "([^"]*)"$`, fc.iCompleteTheFieldWithValue)
	ctx.When(`^I delete the field$`, fc.iDeleteTheField)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.ownerID = fmt.Sprintf("owner-%s", uuid.NewString())
	fc.documentID = ""
	fc.signerID = ""
	fc.fieldID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
