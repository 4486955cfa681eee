package steps

import (
	"fmt"
	"net/http"
)

// samplePDF is a minimal single page PDF, enough for page counting.
var samplePDF = []byte("%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>endobj\n" +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000052 00000 n \n" +
	"0000000101 00000 n \n" +
	"trailer<</Size 4/Root 1 0 R>>\nstartxref\n164\n%%EOF\n")

// Document step implementations
func (fc *FeatureContext) iUploadADocumentWithTitle(title string) error {
	resp, err := fc.apiDriver.CreateDocument(fc.ownerID, title, samplePDF)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aDocumentExistsWithTitle(title string) error {
	resp, err := fc.apiDriver.CreateDocument(fc.ownerID, title, samplePDF)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.documentID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iGetTheDocumentByItsID() error {
	resp, err := fc.apiDriver.GetDocument(fc.ownerID, fc.documentID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theResponseShouldContainTheDocumentWithTitle(title string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(title, data["title"])
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheDocumentDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.documentID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iListAllMyDocuments() error {
	resp, err := fc.apiDriver.ListDocuments(fc.ownerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheDocumentWithTitle(title string) error {
	documents, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, document := range documents {
		if document["title"] == title {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Document with title %s not found in list", title))
	return nil
}

func (fc *FeatureContext) iSoftDeleteTheDocument() error {
	resp, err := fc.apiDriver.DeleteDocument(fc.ownerID, fc.documentID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iRequestFinalizationOfTheDocument() error {
	resp, err := fc.apiDriver.FinalizeDocument(fc.ownerID, fc.documentID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}
