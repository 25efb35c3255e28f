package archive

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type recordingUploader struct {
	mu    sync.Mutex
	keys  []string
	gate  chan struct{}
	fails bool
}

func (u *recordingUploader) Upload(_ context.Context, job Job) error {
	if u.gate != nil {
		<-u.gate
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = append(u.keys, job.Key)
	if u.fails {
		return errors.New("boom")
	}
	return nil
}

func (u *recordingUploader) uploaded() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.keys...)
}

func TestKey(t *testing.T) {
	at := time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC)
	key := Key(at, "pdf")

	require.Regexp(t, regexp.MustCompile(`^relatorios/2026/04/[0-9a-f-]{36}\.pdf$`), key)
	require.NotEqual(t, key, Key(at, "pdf"))
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	up := &recordingUploader{}
	d := NewDispatcher(up)

	for _, k := range []string{"a", "b", "c"} {
		require.True(t, d.Dispatch(Job{Key: k}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	require.Equal(t, []string{"a", "b", "c"}, up.uploaded())
	require.False(t, d.Dispatch(Job{Key: "late"}))
	require.NoError(t, d.Close(ctx))
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	up := &recordingUploader{gate: make(chan struct{})}
	d := NewDispatcher(up)

	accepted := 0
	for range QueueSize + 10 {
		if d.Dispatch(Job{Key: "k"}) {
			accepted++
		}
	}
	// o worker pode ter retirado um job da fila antes de bloquear
	require.GreaterOrEqual(t, accepted, QueueSize)
	require.LessOrEqual(t, accepted, QueueSize+1)

	close(up.gate)
	require.NoError(t, d.Close(context.Background()))
	require.Len(t, up.uploaded(), accepted)
}

func TestDispatcherUploadErrorKeepsWorking(t *testing.T) {
	up := &recordingUploader{fails: true}
	d := NewDispatcher(up)

	d.Dispatch(Job{Key: "x"})
	d.Dispatch(Job{Key: "y"})
	require.NoError(t, d.Close(context.Background()))
	require.Len(t, up.uploaded(), 2)
}

func TestDispatcherCloseHonorsContext(t *testing.T) {
	up := &recordingUploader{gate: make(chan struct{})}
	d := NewDispatcher(up)
	d.Dispatch(Job{Key: "stuck"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

	close(up.gate)
}

type fakePutObject struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3UploaderUpload(t *testing.T) {
	fake := &fakePutObject{}
	u := &S3Uploader{client: fake, bucket: "relatorios"}

	err := u.Upload(context.Background(), Job{Key: "relatorios/2026/04/x.pdf", ContentType: "application/pdf", Body: []byte("%PDF-")})
	require.NoError(t, err)
	require.Equal(t, "relatorios", aws.ToString(fake.input.Bucket))
	require.Equal(t, "relatorios/2026/04/x.pdf", aws.ToString(fake.input.Key))
	require.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	require.Equal(t, int64(5), aws.ToInt64(fake.input.ContentLength))

	fake.err = errors.New("denied")
	require.ErrorContains(t, u.Upload(context.Background(), Job{Key: "k"}), "denied")
}

func TestNewS3Uploader(t *testing.T) {
	u := NewS3Uploader(S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKey: "a", SecretKey: "s"})
	require.Equal(t, "b", u.bucket)
	require.NotNil(t, u.client)
}

func TestCredentialsProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		cfg       S3Config
		anonymous bool
	}{
		{"both keys", S3Config{AccessKey: "a", SecretKey: "s"}, false},
		{"no keys", S3Config{}, true},
		{"only access key", S3Config{AccessKey: "a"}, true},
		{"only secret", S3Config{SecretKey: "s"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := credentialsProvider(tt.cfg)
			require.NotNil(t, p)
			require.Equal(t, !tt.anonymous, tt.cfg.HasStaticCredentials())

			if tt.anonymous {
				require.IsType(t, aws.AnonymousCredentials{}, p)
				return
			}

			creds, err := p.Retrieve(ctx)
			require.NoError(t, err)
			require.Equal(t, "a", creds.AccessKeyID)
			require.Equal(t, "s", creds.SecretAccessKey)
		})
	}
}
