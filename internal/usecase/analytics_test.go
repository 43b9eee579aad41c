package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/linkstats/internal/entity"
	"github.com/vadimbarashkov/linkstats/mocks/usecase"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"
)

type AnalyticsUseCaseTestSuite struct {
	suite.Suite
	errUnknown    error
	now           time.Time
	linkRepoMock  *usecase.MockLinkRepository
	clickRepoMock *usecase.MockClickRepository
	uc            *AnalyticsUseCase
}

func (suite *AnalyticsUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *AnalyticsUseCaseTestSuite) SetupSubTest() {
	suite.linkRepoMock = usecase.NewMockLinkRepository(suite.T())
	suite.clickRepoMock = usecase.NewMockClickRepository(suite.T())
	suite.uc = NewAnalyticsUseCase(
		suite.linkRepoMock,
		suite.clickRepoMock,
		WithBaseURL("https://sho.rt/"),
		WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *AnalyticsUseCaseTestSuite) TearDownSubTest() {
	suite.linkRepoMock.AssertExpectations(suite.T())
	suite.clickRepoMock.AssertExpectations(suite.T())
}

func (suite *AnalyticsUseCaseTestSuite) click(alias, ip, ua string, daysAgo int) entity.ClickEvent {
	return entity.ClickEvent{
		Alias:     alias,
		ClientIP:  ip,
		UserAgent: ua,
		Timestamp: suite.now.AddDate(0, 0, -daysAgo),
	}
}

func (suite *AnalyticsUseCaseTestSuite) TestGetAliasAnalytics() {
	ctx := context.Background()

	suite.Run("link not found", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(nil, entity.ErrLinkNotFound)

		summary, err := suite.uc.GetAliasAnalytics(ctx, "abc123")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrLinkNotFound)
		suite.NotErrorIs(err, entity.ErrNoAnalyticsData)
		suite.Nil(summary)
	})

	suite.Run("no analytics data", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(&entity.Link{Alias: "abc123"}, nil)
		suite.clickRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(nil, nil)

		summary, err := suite.uc.GetAliasAnalytics(ctx, "abc123")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrNoAnalyticsData)
		suite.NotErrorIs(err, entity.ErrLinkNotFound)
		suite.Nil(summary)
	})

	suite.Run("click reader error", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(&entity.Link{Alias: "abc123"}, nil)
		suite.clickRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(nil, suite.errUnknown)

		summary, err := suite.uc.GetAliasAnalytics(ctx, "abc123")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(summary)
	})

	suite.Run("query deadline", func() {
		suite.uc.queryTimeout = time.Minute

		suite.linkRepoMock.
			On("RetrieveByAlias", mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := ctx.Deadline()
				return ok
			}), "abc123").
			Once().
			Return(nil, entity.ErrLinkNotFound)

		_, err := suite.uc.GetAliasAnalytics(ctx, "abc123")

		suite.ErrorIs(err, entity.ErrLinkNotFound)
	})

	suite.Run("success", func() {
		suite.linkRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return(&entity.Link{Alias: "abc123"}, nil)
		suite.clickRepoMock.
			On("RetrieveByAlias", mock.Anything, "abc123").
			Once().
			Return([]entity.ClickEvent{
				suite.click("abc123", "1.1.1.1", desktopUA, 0),
				suite.click("abc123", "1.1.1.1", mobileUA, 0),
				suite.click("abc123", "2.2.2.2", desktopUA, 0),
			}, nil)

		summary, err := suite.uc.GetAliasAnalytics(ctx, "abc123")

		suite.Require().NoError(err)
		suite.Equal(3, summary.TotalClicks)
		suite.Equal(2, summary.UniqueClicks)
		suite.Require().Len(summary.ClicksByDate, 15)
		suite.Equal(entity.DailyClicks{Date: "2024-03-10", Count: 3}, summary.ClicksByDate[14])
		for _, d := range summary.ClicksByDate[:14] {
			suite.Zero(d.Count)
		}
		suite.Equal([]entity.Breakdown{
			{Label: "Windows NT 10.0", UniqueClicks: 2, UniqueUsers: 1},
			{Label: "iPhone", UniqueClicks: 1, UniqueUsers: 1},
		}, summary.OSType)
		suite.Equal([]entity.Breakdown{
			{Label: "desktop", UniqueClicks: 2, UniqueUsers: 1},
			{Label: "mobile", UniqueClicks: 1, UniqueUsers: 1},
		}, summary.DeviceType)
	})
}

func (suite *AnalyticsUseCaseTestSuite) TestGetTopicAnalytics() {
	ctx := context.Background()
	links := []entity.Link{
		{Alias: "first", Topic: entity.TopicAcquisition},
		{Alias: "second", Topic: entity.TopicAcquisition},
	}

	suite.Run("no links", func() {
		suite.linkRepoMock.
			On("RetrieveByTopic", mock.Anything, entity.TopicRetention).
			Once().
			Return(nil, nil)

		summary, err := suite.uc.GetTopicAnalytics(ctx, entity.TopicRetention)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrLinkNotFound)
		suite.Nil(summary)
	})

	suite.Run("link reader error", func() {
		suite.linkRepoMock.
			On("RetrieveByTopic", mock.Anything, entity.TopicAcquisition).
			Once().
			Return(nil, suite.errUnknown)

		summary, err := suite.uc.GetTopicAnalytics(ctx, entity.TopicAcquisition)

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(summary)
	})

	suite.Run("no analytics data", func() {
		suite.linkRepoMock.
			On("RetrieveByTopic", mock.Anything, entity.TopicAcquisition).
			Once().
			Return(links, nil)
		suite.clickRepoMock.
			On("RetrieveByAliases", mock.Anything, []string{"first", "second"}).
			Once().
			Return([]entity.ClickEvent{}, nil)

		summary, err := suite.uc.GetTopicAnalytics(ctx, entity.TopicAcquisition)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrNoAnalyticsData)
		suite.Nil(summary)
	})

	suite.Run("success", func() {
		suite.linkRepoMock.
			On("RetrieveByTopic", mock.Anything, entity.TopicAcquisition).
			Once().
			Return(links, nil)
		suite.clickRepoMock.
			On("RetrieveByAliases", mock.Anything, []string{"first", "second"}).
			Once().
			Return([]entity.ClickEvent{
				suite.click("first", "1.1.1.1", desktopUA, 1),
				suite.click("first", "2.2.2.2", desktopUA, 20),
			}, nil)

		summary, err := suite.uc.GetTopicAnalytics(ctx, entity.TopicAcquisition)

		suite.Require().NoError(err)
		suite.Equal(2, summary.TotalClicks)
		suite.Equal(2, summary.UniqueClicks)
		suite.Require().Len(summary.ClicksByDate, 15)
		suite.Equal(entity.DailyClicks{Date: "2024-03-09", Count: 1}, summary.ClicksByDate[13])
		suite.Equal([]entity.LinkClicks{
			{Alias: "first", ShortURL: "https://sho.rt/first", TotalClicks: 2, UniqueClicks: 2},
			{Alias: "second", ShortURL: "https://sho.rt/second"},
		}, summary.URLs)
	})
}

func (suite *AnalyticsUseCaseTestSuite) TestGetAccountAnalytics() {
	ctx := context.Background()

	suite.Run("no links", func() {
		suite.linkRepoMock.
			On("RetrieveByOwner", mock.Anything, "user-1").
			Once().
			Return([]entity.Link{}, nil)

		summary, err := suite.uc.GetAccountAnalytics(ctx, "user-1")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrLinkNotFound)
		suite.Nil(summary)
	})

	suite.Run("no analytics data", func() {
		suite.linkRepoMock.
			On("RetrieveByOwner", mock.Anything, "user-1").
			Once().
			Return([]entity.Link{{Alias: "first"}}, nil)
		suite.clickRepoMock.
			On("RetrieveByAliases", mock.Anything, []string{"first"}).
			Once().
			Return(nil, nil)

		summary, err := suite.uc.GetAccountAnalytics(ctx, "user-1")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrNoAnalyticsData)
		suite.Nil(summary)
	})

	suite.Run("click reader error", func() {
		suite.linkRepoMock.
			On("RetrieveByOwner", mock.Anything, "user-1").
			Once().
			Return([]entity.Link{{Alias: "first"}}, nil)
		suite.clickRepoMock.
			On("RetrieveByAliases", mock.Anything, []string{"first"}).
			Once().
			Return(nil, suite.errUnknown)

		summary, err := suite.uc.GetAccountAnalytics(ctx, "user-1")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(summary)
	})

	suite.Run("success", func() {
		suite.linkRepoMock.
			On("RetrieveByOwner", mock.Anything, "user-1").
			Once().
			Return([]entity.Link{{Alias: "first"}, {Alias: "second"}, {Alias: "third"}}, nil)
		suite.clickRepoMock.
			On("RetrieveByAliases", mock.Anything, []string{"first", "second", "third"}).
			Once().
			Return([]entity.ClickEvent{
				suite.click("first", "1.1.1.1", desktopUA, 0),
				suite.click("second", "1.1.1.1", mobileUA, 2),
				suite.click("second", "3.3.3.3", mobileUA, 2),
			}, nil)

		summary, err := suite.uc.GetAccountAnalytics(ctx, "user-1")

		suite.Require().NoError(err)
		suite.Equal(3, summary.TotalURLs)
		suite.Equal(3, summary.TotalClicks)
		suite.Equal(2, summary.UniqueClicks)
		suite.Equal(2, summary.ClicksByDate[12].Count)
		suite.Equal(1, summary.ClicksByDate[14].Count)
		suite.Equal([]entity.Breakdown{
			{Label: "desktop", UniqueClicks: 1, UniqueUsers: 1},
			{Label: "mobile", UniqueClicks: 2, UniqueUsers: 1},
		}, summary.DeviceType)
	})
}

func TestAnalyticsUseCase(t *testing.T) {
	suite.Run(t, new(AnalyticsUseCaseTestSuite))
}
