package steps

import (
	"net/http"
)

// Field step implementations
func (fc *FeatureContext) iPlaceAFieldOnPageAtPosition(fieldType string, page, x, y int) error {
	resp, err := fc.apiDriver.CreateField(fc.documentID, fieldType, page, fc.signerID, float64(x), float64(y), 30, 10)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aFieldExistsOnPage(fieldType string, page int) error {
	resp, err := fc.apiDriver.CreateField(fc.documentID, fieldType, page, fc.signerID, 10, 20, 30, 10)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.fieldID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheFieldDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.fieldID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iMoveTheFieldToPosition(x, y int) error {
	resp, err := fc.apiDriver.UpdateFieldPosition(fc.documentID, fc.fieldID, float64(x), float64(y), 30, 10)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theFieldPositionShouldBe(x, y int) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(float64(x), data["x_position"])
	fc.require.Equal(float64(y), data["y_position"])
	return nil
}

func (fc *FeatureContext) iListTheFieldsOnPage(page int) error {
	resp, err := fc.apiDriver.ListFields(fc.documentID, page)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainFields(count int) error {
	var fields []map[string]any
	err := fc.decodeBody(fc.response.Body, &fields)
	fc.require.NoError(err)
	fc.require.Len(fields, count)
	return nil
}

func (fc *FeatureContext) iCompleteTheFieldWithValue(value string) error {
	resp, err := fc.apiDriver.CompleteField(fc.documentID, fc.fieldID, fc.signerID, value)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iDeleteTheField() error {
	resp, err := fc.apiDriver.DeleteField(fc.documentID, fc.fieldID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}
