package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/services"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/platform/viewcache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceQueryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	views    *viewcache.LRUViewCache
	service  *services.InvoiceService
	ctx      context.Context
}

func (suite *InvoiceQueryServiceTestSuite) SetupTest() {
	var err error
	suite.mockRepo = new(MockInvoiceRepository)
	suite.views, err = viewcache.New(16)
	suite.Require().NoError(err)
	suite.ctx = context.Background()
	suite.service = services.NewInvoiceService(suite.mockRepo, services.WithViewCache(suite.views))
}

func (suite *InvoiceQueryServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func listItems(n int) []domain.InvoiceListItem {
	items := make([]domain.InvoiceListItem, n)
	for i := range items {
		items[i] = domain.InvoiceListItem{
			Invoice:      domain.Invoice{ID: uuid.NewString(), CustomerID: "c1", AmountCents: 100, Status: domain.StatusPaid, Date: "2024-01-01"},
			CustomerName: "Lee Robinson",
		}
	}
	return items
}

func (suite *InvoiceQueryServiceTestSuite) TestListInvoices_PagesAndCounts() {
	suite.mockRepo.On("CountInvoices", suite.ctx, "lee").Return(13, nil).Once()
	suite.mockRepo.On("ListInvoices", suite.ctx, portsrepo.InvoiceListFilter{Query: "lee", Limit: 6, Offset: 12}).
		Return(listItems(1), nil).Once()

	page, err := suite.service.ListInvoices(suite.ctx, dto.ListInvoicesParams{Query: "  lee ", Page: 3})

	suite.Require().NoError(err)
	suite.Equal(3, page.Page)
	suite.Equal(3, page.TotalPages)
	suite.Equal("lee", page.Query)
	suite.Len(page.Items, 1)
}

func (suite *InvoiceQueryServiceTestSuite) TestListInvoices_EmptyListingHasOnePage() {
	suite.mockRepo.On("CountInvoices", suite.ctx, "").Return(0, nil).Once()
	suite.mockRepo.On("ListInvoices", suite.ctx, portsrepo.InvoiceListFilter{Limit: 6}).Return(nil, nil).Once()

	page, err := suite.service.ListInvoices(suite.ctx, dto.ListInvoicesParams{Page: 0})

	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(1, page.TotalPages)
	suite.NotNil(page.Items)
	suite.Empty(page.Items)
}

func (suite *InvoiceQueryServiceTestSuite) TestListInvoices_ServedFromCacheUntilInvalidated() {
	suite.mockRepo.On("CountInvoices", suite.ctx, "").Return(2, nil).Twice()
	suite.mockRepo.On("ListInvoices", suite.ctx, mock.AnythingOfType("repositories.InvoiceListFilter")).
		Return(listItems(2), nil).Twice()
	suite.mockRepo.On("DeleteInvoice", suite.ctx, mock.Anything).Return(int64(1), nil).Once()

	params := dto.ListInvoicesParams{Page: 1}
	first, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	second, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	suite.Same(first, second)

	_, err = suite.service.DeleteInvoice(suite.ctx, uuid.NewString())
	suite.Require().NoError(err)

	third, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	suite.NotSame(first, third)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "CountInvoices", 2)
}

func (suite *InvoiceQueryServiceTestSuite) TestListInvoices_ReadOverlappingMutationIsNotCached() {
	filter := portsrepo.InvoiceListFilter{Limit: 6}
	suite.mockRepo.On("CountInvoices", suite.ctx, "").Return(1, nil).Twice()
	suite.mockRepo.On("DeleteInvoice", suite.ctx, mock.Anything).Return(int64(1), nil).Once()
	// The delete lands after the read queried storage but before it filled the cache.
	suite.mockRepo.On("ListInvoices", suite.ctx, filter).
		Run(func(args mock.Arguments) {
			_, err := suite.service.DeleteInvoice(suite.ctx, uuid.NewString())
			suite.Require().NoError(err)
		}).
		Return(listItems(1), nil).Once()
	suite.mockRepo.On("ListInvoices", suite.ctx, filter).Return(listItems(0), nil).Once()

	params := dto.ListInvoicesParams{Page: 1}
	overlapped, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	suite.Len(overlapped.Items, 1)
	suite.Equal(0, suite.views.Len())

	after, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	suite.Empty(after.Items)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListInvoices", 2)

	cached, err := suite.service.ListInvoices(suite.ctx, params)
	suite.Require().NoError(err)
	suite.Same(after, cached)
}

func (suite *InvoiceQueryServiceTestSuite) TestListInvoices_StorageFailureIsFatal() {
	suite.mockRepo.On("CountInvoices", suite.ctx, "").Return(0, errors.New("db down")).Once()

	page, err := suite.service.ListInvoices(suite.ctx, dto.ListInvoicesParams{Page: 1})

	suite.Nil(page)
	suite.True(apperrors.IsPersistence(err))
	suite.Equal(0, suite.views.Len())
}

func (suite *InvoiceQueryServiceTestSuite) TestGetInvoiceByID() {
	id := uuid.NewString()
	want := &domain.Invoice{ID: id, CustomerID: "c1", AmountCents: 6900, Status: domain.StatusPending, Date: "2024-03-06"}
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, id).Return(want, nil).Once()

	got, err := suite.service.GetInvoiceByID(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Equal(want, got)
}

func (suite *InvoiceQueryServiceTestSuite) TestGetInvoiceByID_NotFound() {
	id := uuid.NewString()
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetInvoiceByID(suite.ctx, id)

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.False(apperrors.IsPersistence(err))
}

func (suite *InvoiceQueryServiceTestSuite) TestGetInvoiceByID_MalformedID() {
	got, err := suite.service.GetInvoiceByID(suite.ctx, "abc")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func TestInvoiceQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceQueryServiceTestSuite))
}
