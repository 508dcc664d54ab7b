package blogsdk_test

import (
	"testing"

	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateAccountRequest_Validate(t *testing.T) {
	valid := blogsdk.CreateAccountRequest{Username: "alice", Password: "longenough"}
	require.Nil(t, valid.Validate())

	tests := []struct {
		name  string
		mod   func(r *blogsdk.CreateAccountRequest)
		field string
	}{
		{"missing username", func(r *blogsdk.CreateAccountRequest) { r.Username = "" }, "username"},
		{"short username", func(r *blogsdk.CreateAccountRequest) { r.Username = "al" }, "username"},
		{"username with spaces", func(r *blogsdk.CreateAccountRequest) { r.Username = "al ice" }, "username"},
		{"short password", func(r *blogsdk.CreateAccountRequest) { r.Password = "short" }, "password"},
		{"bad email", func(r *blogsdk.CreateAccountRequest) { r.Email = ptr("not-an-email") }, "email"},
		{"bad phone", func(r *blogsdk.CreateAccountRequest) { r.PhoneNumber = ptr("0400 000 000") }, "phone_number"},
		{"bad gender", func(r *blogsdk.CreateAccountRequest) { r.Gender = "x" }, "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mod(&req)
			errs := req.Validate()
			require.Contains(t, errs, tt.field)
			require.Len(t, errs, 1)
		})
	}
}

func TestUpdateAccountRequest_Validate(t *testing.T) {
	require.Nil(t, blogsdk.UpdateAccountRequest{}.Validate(), "empty patch is valid")
	require.Nil(t, blogsdk.UpdateAccountRequest{Bio: ptr("hello"), IsOwner: ptr(true)}.Validate())

	errs := blogsdk.UpdateAccountRequest{Password: ptr("123")}.Validate()
	require.Equal(t, "must be at least 8 characters", errs["password"])
}

func TestPostRequests_Validate(t *testing.T) {
	require.Nil(t, blogsdk.CreatePostRequest{Title: "Hi", Slug: "hello-world", Text: "body"}.Validate())

	errs := blogsdk.CreatePostRequest{Title: "Hi", Slug: "Hello World", Text: ""}.Validate()
	require.Contains(t, errs, "slug")
	require.Contains(t, errs, "text")

	require.Contains(t, blogsdk.UpdatePostRequest{Title: ptr("")}.Validate(), "title")
	require.Nil(t, blogsdk.UpdatePostRequest{IsDelete: ptr(true)}.Validate())
}
