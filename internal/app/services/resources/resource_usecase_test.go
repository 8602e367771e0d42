package resources

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
)

type resourceCoreFake struct {
	pages       map[int][]json.RawMessage
	listedPages []int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *resourceCoreFake) List(ctx context.Context, path, filterParam string, query requests.ListQuery) (*responses.CorePagedResponse, error) {
	f.listedPages = append(f.listedPages, query.Page)
	return &responses.CorePagedResponse{
		Content: f.pages[query.Page],
		Page:    responses.CorePage{Number: query.Page, Size: query.Size, TotalPages: len(f.pages)},
	}, nil
}
func (f *resourceCoreFake) Get(ctx context.Context, path string, id int64) (json.RawMessage, error) {
	return json.RawMessage(`{"id":1}`), nil
}
func (f *resourceCoreFake) Create(ctx context.Context, path string, payload map[string]interface{}) (json.RawMessage, error) {
	f.createCalls++
	return json.RawMessage(`{"id":1}`), nil
}
func (f *resourceCoreFake) Update(ctx context.Context, path string, id int64, payload map[string]interface{}) (json.RawMessage, error) {
	f.updateCalls++
	return json.RawMessage(`{"id":1}`), nil
}
func (f *resourceCoreFake) Delete(ctx context.Context, path string, id int64) error {
	f.deleteCalls++
	return nil
}

func newResourceUsecaseForTest(fake *resourceCoreFake) *resourceUsecase {
	return &resourceUsecase{Resources: fake, Log: zap.NewNop()}
}

func TestResourceList(t *testing.T) {
	t.Run("unknown resource", func(t *testing.T) {
		usecase := newResourceUsecaseForTest(&resourceCoreFake{})

		_, _, err := usecase.List(context.Background(), "gadgets", requests.ListQuery{})

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("steps back once from an empty page", func(t *testing.T) {
		fake := &resourceCoreFake{pages: map[int][]json.RawMessage{
			0: {json.RawMessage(`{"id":1,"name":"General"}`)},
			2: {},
		}}
		usecase := newResourceUsecaseForTest(fake)

		rows, pagination, err := usecase.List(context.Background(), constvars.ResourceSpecializations, requests.ListQuery{Page: 2, Size: 5})

		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, fake.listedPages)
		assert.Empty(t, rows)
		assert.Equal(t, 1, pagination.Page)
	})

	t.Run("first page stays put", func(t *testing.T) {
		fake := &resourceCoreFake{pages: map[int][]json.RawMessage{0: {}}}
		usecase := newResourceUsecaseForTest(fake)

		_, _, err := usecase.List(context.Background(), constvars.ResourceHospitals, requests.ListQuery{Page: 0, Size: 5})

		require.NoError(t, err)
		assert.Equal(t, []int{0}, fake.listedPages)
	})
}

func TestResourceCreate(t *testing.T) {
	t.Run("missing required field never reaches the network", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		_, err := usecase.Create(context.Background(), constvars.ResourceHospitals, map[string]interface{}{
			"name": "City Hospital",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "address")
		assert.Equal(t, 0, fake.createCalls)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		_, err := usecase.Create(context.Background(), constvars.ResourceSpecializations, map[string]interface{}{
			"name": "",
		})

		require.Error(t, err)
		assert.Equal(t, 0, fake.createCalls)
	})

	t.Run("complete payload goes through", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		row, err := usecase.Create(context.Background(), constvars.ResourceHospitals, map[string]interface{}{
			"name":    "City Hospital",
			"address": "1 Main St",
		})

		require.NoError(t, err)
		assert.NotNil(t, row)
		assert.Equal(t, 1, fake.createCalls)
	})

	t.Run("read only resource rejects writes", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		_, err := usecase.Create(context.Background(), constvars.ResourcePayments, map[string]interface{}{})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, 0, fake.createCalls)
	})
}

func TestResourceDelete(t *testing.T) {
	t.Run("read only resource rejects delete", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		err := usecase.Delete(context.Background(), constvars.ResourcePayments, 1)

		require.Error(t, err)
		assert.Equal(t, 0, fake.deleteCalls)
	})

	t.Run("writable resource deletes", func(t *testing.T) {
		fake := &resourceCoreFake{}
		usecase := newResourceUsecaseForTest(fake)

		err := usecase.Delete(context.Background(), constvars.ResourceDoctors, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, fake.deleteCalls)
	})
}
