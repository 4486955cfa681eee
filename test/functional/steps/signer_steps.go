package steps

import (
	"fmt"
	"net/http"
)

// Signer step implementations
func (fc *FeatureContext) iAddASignerWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.AddSigner(fc.documentID, name, email)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aSignerExistsWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.AddSigner(fc.documentID, name, email)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.signerID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iListAllSigners() error {
	resp, err := fc.apiDriver.ListSigners(fc.documentID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheSignerWithEmail(email string) error {
	var signers []map[string]any
	err := fc.decodeBody(fc.response.Body, &signers)
	fc.require.NoError(err)

	found := false
	for _, signer := range signers {
		if signer["email"] == email {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Signer with email %s not found in list", email))
	return nil
}

func (fc *FeatureContext) iRemoveTheSigner() error {
	resp, err := fc.apiDriver.RemoveSigner(fc.documentID, fc.signerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}
