package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainMessage(t *testing.T) {
	video := "https://youtu.be/x"
	in := &MergeProfileRequest{
		RestaurantID: "kaffeewerk",
		Mask:         []string{FieldVideoURL, FieldSocials},
		Profile:      Profile{VideoURL: &video, Socials: map[string]string{"instagram": "https://instagram.com/kw"}},
	}

	b, err := codec{}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"video_url":"https://youtu.be/x"`)
	assert.Contains(t, string(b), `"google_business_url":null`)

	var out MergeProfileRequest
	require.NoError(t, codec{}.Unmarshal(b, &out))
	assert.Equal(t, in.Mask, out.Mask)
	require.NotNil(t, out.Profile.VideoURL)
	assert.Equal(t, video, *out.Profile.VideoURL)
	assert.Nil(t, out.Profile.GoogleBusinessURL)
}

func TestCodec_ProtoMessage(t *testing.T) {
	b, err := codec{}.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	require.NoError(t, codec{}.Unmarshal([]byte("{}"), &emptypb.Empty{}))
	require.Error(t, codec{}.Unmarshal([]byte(`{"x":1}`), &emptypb.Empty{}))
}
