package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/linkstats/internal/entity"
	"github.com/vadimbarashkov/linkstats/mocks/cache"
)

type LinkRepositoryTestSuite struct {
	suite.Suite
	errUnknown   error
	linkRepoMock *cache.MockLinkRepository
	repo         *LinkRepository
}

func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
}

func (suite *LinkRepositoryTestSuite) SetupSubTest() {
	suite.linkRepoMock = cache.NewMockLinkRepository(suite.T())

	repo, err := NewLinkRepository(suite.linkRepoMock, 2)
	suite.Require().NoError(err)
	suite.repo = repo
}

func (suite *LinkRepositoryTestSuite) TearDownSubTest() {
	suite.linkRepoMock.AssertExpectations(suite.T())
}

func (suite *LinkRepositoryTestSuite) TestNewLinkRepository() {
	suite.Run("invalid size", func() {
		repo, err := NewLinkRepository(suite.linkRepoMock, 0)

		suite.Error(err)
		suite.Nil(repo)
	})
}

func (suite *LinkRepositoryTestSuite) TestRetrieveByAlias() {
	ctx := context.Background()

	suite.Run("error is not cached", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", ctx, "abc123").
			Twice().
			Return(nil, entity.ErrLinkNotFound)

		for i := 0; i < 2; i++ {
			link, err := suite.repo.RetrieveByAlias(ctx, "abc123")

			suite.ErrorIs(err, entity.ErrLinkNotFound)
			suite.Nil(link)
		}
	})

	suite.Run("second lookup served from cache", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", ctx, "abc123").
			Once().
			Return(&entity.Link{ID: 1, Alias: "abc123", OriginalURL: "https://example.com"}, nil)

		for i := 0; i < 3; i++ {
			link, err := suite.repo.RetrieveByAlias(ctx, "abc123")

			suite.NoError(err)
			suite.Equal("https://example.com", link.OriginalURL)
		}
	})

	suite.Run("least recently used entry is evicted", func() {
		for _, alias := range []string{"a", "b", "c"} {
			suite.linkRepoMock.
				On("RetrieveByAlias", ctx, alias).
				Once().
				Return(&entity.Link{Alias: alias}, nil)
		}
		suite.linkRepoMock.
			On("RetrieveByAlias", ctx, "a").
			Once().
			Return(&entity.Link{Alias: "a"}, nil)

		for _, alias := range []string{"a", "b", "c", "a"} {
			_, err := suite.repo.RetrieveByAlias(ctx, alias)
			suite.NoError(err)
		}
	})
}

func (suite *LinkRepositoryTestSuite) TestSave() {
	ctx := context.Background()
	link := entity.Link{Alias: "abc123", OriginalURL: "https://example.com"}

	suite.Run("error", func() {
		suite.linkRepoMock.
			On("Save", ctx, link).
			Once().
			Return(nil, suite.errUnknown)

		saved, err := suite.repo.Save(ctx, link)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(saved)
	})

	suite.Run("saved link is cached", func() {
		suite.linkRepoMock.
			On("Save", ctx, link).
			Once().
			Return(&entity.Link{ID: 1, Alias: "abc123", OriginalURL: "https://example.com"}, nil)

		_, err := suite.repo.Save(ctx, link)
		suite.Require().NoError(err)

		got, err := suite.repo.RetrieveByAlias(ctx, "abc123")

		suite.NoError(err)
		suite.Equal(int64(1), got.ID)
	})
}

func (suite *LinkRepositoryTestSuite) TestRetrieveByTopic() {
	suite.Run("delegates", func() {
		suite.linkRepoMock.
			On("RetrieveByTopic", context.Background(), entity.TopicActivation).
			Once().
			Return([]entity.Link{{Alias: "abc123"}}, nil)

		links, err := suite.repo.RetrieveByTopic(context.Background(), entity.TopicActivation)

		suite.NoError(err)
		suite.Len(links, 1)
	})
}

func TestLinkRepository(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
