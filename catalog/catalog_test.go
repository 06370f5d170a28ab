package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	draft3 "github.com/restdocs/draft3-go"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{
		"customers.customerNumber.contacts.contactNumber.get",
		"customers.customerNumber.contacts.get",
		"customers.get",
		"customers.post",
	}, Names())
}

func TestLoad_AllDocumentsCheckClean(t *testing.T) {
	for _, name := range Names() {
		s, err := Load(name)
		require.NoError(t, err, name)
		require.NotNil(t, s, name)
		require.NoError(t, s.Check(draft3.WithRequireSupportedDraft()), name)
	}
}

func TestRaw_NotFound(t *testing.T) {
	_, err := Raw("invoices.get")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomersCollection_ConformantInstance(t *testing.T) {
	s, err := Load("customers.get")
	require.NoError(t, err)

	res, err := s.ValidateJSON([]byte(`{
        "collection": [
            {
                "customerNumber": 1,
                "name": "Acme A/S",
                "currency": "DKK",
                "customerGroup": {"customerGroupNumber": 1, "self": "https://restapi.example.com/customer-groups/1"},
                "paymentTerms": {"paymentTermsNumber": 1, "self": "https://restapi.example.com/payment-terms/1"},
                "vatZone": {"vatZoneNumber": 1, "self": "https://restapi.example.com/vat-zones/1"},
                "self": "https://restapi.example.com/customers/1"
            }
        ],
        "pagination": {"skipPages": 0, "pageSize": 20, "results": 1},
        "self": "https://restapi.example.com/customers"
    }`))
	require.NoError(t, err)
	require.Empty(t, res.Violations)
}

func TestCustomersCollection_MissingCurrency(t *testing.T) {
	s, err := Load("customers.get")
	require.NoError(t, err)

	res, err := s.ValidateJSON([]byte(`{
        "collection": [
            {
                "name": "Acme A/S",
                "customerGroup": {"self": "https://restapi.example.com/customer-groups/1"},
                "paymentTerms": {"self": "https://restapi.example.com/payment-terms/1"},
                "vatZone": {"self": "https://restapi.example.com/vat-zones/1"},
                "self": "https://restapi.example.com/customers/1"
            }
        ],
        "self": "https://restapi.example.com/customers"
    }`))
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	require.Equal(t, "collection[0].currency", res.Violations[0].Path)
	require.Equal(t, draft3.ConstraintRequired, res.Violations[0].Constraint)
}

func TestContact_EmailNotificationsEnum(t *testing.T) {
	s, err := Load("customers.customerNumber.contacts.contactNumber.get")
	require.NoError(t, err)

	res, err := s.ValidateJSON([]byte(`{
        "name": "Jane Jensen",
        "emailNotifications": ["invoices", "reminders"],
        "self": "https://restapi.example.com/customers/1/contacts/4"
    }`))
	require.NoError(t, err)
	require.Empty(t, res.Violations)

	res, err = s.ValidateJSON([]byte(`{
        "name": "Jane Jensen",
        "emailNotifications": ["invoices", "newsletters"],
        "self": "https://restapi.example.com/customers/1/contacts/4"
    }`))
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	require.Equal(t, "emailNotifications[1]", res.Violations[0].Path)
	require.Equal(t, draft3.ConstraintEnum, res.Violations[0].Constraint)
}

func TestCustomersPost_RejectsEmptyBody(t *testing.T) {
	s, err := Load("customers.post")
	require.NoError(t, err)

	res, err := s.ValidateJSON([]byte(`{}`))
	require.NoError(t, err)
	require.NotEmpty(t, res.Violations)
	for _, v := range res.Violations {
		require.Equal(t, draft3.ConstraintRequired, v.Constraint)
	}
}
