package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"vector", "Vector"},
		{"my_vector", "MyVector"},
		{"UObject", "UObject"},
		{"XMLParser", "XmlParser"},
		{"already_Top_level", "AlreadyTopLevel"},
		{"K2_GetActor", "K2GetActor"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopLevel(tt.input))
		})
	}
}

func TestMemberLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GetActorName", "getActorName"},
		{"K2_DestroyActor", "k2DestroyActor"},
		{"bIsValid", "bIsValid"},
		{"ID", "id"},
		{"fn", "fn"},
		{"my-prop", "myProp"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MemberLevel(tt.input))
		})
	}
}

func TestCasingIsStable(t *testing.T) {
	for _, s := range []string{"GetActorName", "my_vector", "XMLParser", "K2_GetActor"} {
		top := TopLevel(s)
		assert.Equal(t, top, TopLevel(top), "TopLevel(%q)", s)

		member := MemberLevel(s)
		assert.Equal(t, member, MemberLevel(member), "MemberLevel(%q)", s)
	}
}

func TestJoinNames(t *testing.T) {
	skipPlatform := func(s string) bool { return s != "kotlin" && s != "js" }

	assert.Equal(t, "VectorDouble", JoinNames([]string{"vector", "kotlin", "Double"}, skipPlatform))
	assert.Equal(t, "ArrayGuid", JoinNames([]string{"kotlin", "Array", "ue", "Guid"}, func(s string) bool {
		return skipPlatform(s) && s != "ue"
	}))
	assert.Equal(t, "AB", JoinNames([]string{"a", "", "b"}, nil))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Guid", Capitalize("guid"))
	assert.Equal(t, "$", Capitalize("$"))
	assert.Empty(t, Capitalize(""))
}

func TestEndsInDigit(t *testing.T) {
	assert.True(t, EndsInDigit("T$12"))
	assert.False(t, EndsInDigit("GuidProvider"))
	assert.False(t, EndsInDigit(""))
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"orderId", "orderid"},
		{"XMLParser", "xmlparser"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"actor", "actor"},
		{"in", "`in`"},
		{"object", "`object`"},
		{"T$0", "`T$0`"},
		{"2d", "`2d`"},
		{"_hidden", "_hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}

	assert.True(t, IsKeyword("typealias"))
	assert.False(t, IsKeyword("function"))
}
