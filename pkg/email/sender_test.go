package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("john@example.com"))
	assert.True(t, IsEmailValid("john.doe+tag@sub.example.com"))
	assert.False(t, IsEmailValid("not-an-email"))
	assert.False(t, IsEmailValid("john@"))
	assert.False(t, IsEmailValid(""))
}

func TestSendEmailInputValidate(t *testing.T) {
	valid := SendEmailInput{To: "john@example.com", Subject: "hi", Body: "there"}
	assert.NoError(t, valid.Validate())

	missingTo := SendEmailInput{Subject: "hi", Body: "there"}
	assert.Error(t, missingTo.Validate())

	missingSubject := SendEmailInput{To: "john@example.com", Body: "there"}
	assert.Error(t, missingSubject.Validate())

	badTo := SendEmailInput{To: "bad", Subject: "hi", Body: "there"}
	assert.Error(t, badTo.Validate())
}
