package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaskedIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want string
	}{
		{"ipv4", "123.45.67.89", "123.45.**.**"},
		{"ipv4 short octets", "8.8.8.8", "8.8.**.**"},
		{
			"ipv6 full",
			"2001:0db8:11a3:09d7:1f34:8a2e:07a0:765d",
			"2001:0db8:11a3:09d7:****:****:****:****",
		},
		{
			"ipv6 compressed gets expanded",
			"2001:db8::1",
			"2001:0db8:0000:0000:****:****:****:****",
		},
		{"unparseable", "not-an-ip", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := Post{IP: tt.ip}
			assert.Equal(t, tt.want, post.MaskedIP())
		})
	}
}

func TestDeletedAndEditedFlags(t *testing.T) {
	post := Post{CreatedAt: time.Now()}
	assert.False(t, post.IsDeleted())
	assert.False(t, post.WasEdited())

	stamp := time.Now()
	post.DeletedAt = &stamp
	post.UpdatedAt = stamp
	assert.True(t, post.IsDeleted())
	assert.True(t, post.WasEdited())
}
