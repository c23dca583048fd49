package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
)

const (
	DefaultPageSize = 5

	yesAnswer = "yes"

	cityPrompt      = "We have data on Chicago, New York City or Washington. Choose a city you want more information on: "
	monthPrompt     = "What month would you like information on? (all, january, february, ... , june): "
	dayPrompt       = "What day would you like information on? (all, monday, tuesday, ... sunday): "
	rawDataPrompt   = "\nWould you like to see the raw data? Please enter yes or no.\n"
	moreRawPrompt   = "\nWould you like to see more raw data? Please enter yes or no.\n"
	restartPrompt   = "\nWould you like to restart? Enter yes or no.\n"
	greetingMessage = "Hello! Let's explore some US bikeshare data!"
)

// TableLoader source of the filtered trips and the station catalogs
type TableLoader interface {
	Load(criteria filter.Criteria) (*trip.Table, error)
	LoadStations(city string) (map[string]station.StationData, error)
}

// Publisher receives the report generated in each iteration of the session
type Publisher interface {
	Publish(ctx context.Context, report *stats.Report) error
}

// NoopPublisher discards every report
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *stats.Report) error {
	return nil
}

type state int

const (
	collectFilters state = iota
	loadData
	reportStats
	pageRawData
	askRestart
	terminated
)

func (s state) String() string {
	switch s {
	case collectFilters:
		return "COLLECT_FILTERS"
	case loadData:
		return "LOAD"
	case reportStats:
		return "REPORT"
	case pageRawData:
		return "PAGE_RAW"
	case askRestart:
		return "ASK_RESTART"
	case terminated:
		return "TERMINATED"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// iteration state owned by one pass of the session: it is discarded when the user restarts
type iteration struct {
	id       string
	criteria filter.Criteria
	table    *trip.Table
	catalog  map[string]station.StationData
	cursor   int
}

// Session drives the interaction: collect filters, load, report, optionally page the raw
// trips and ask whether to restart
type Session struct {
	console   *Console
	loader    TableLoader
	publisher Publisher
	pageSize  int
}

func NewSession(in io.Reader, out io.Writer, loader TableLoader, publisher Publisher, pageSize int) *Session {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Session{
		console:   NewConsole(in, out),
		loader:    loader,
		publisher: publisher,
		pageSize:  pageSize,
	}
}

// Run executes the session until the user does not want to restart. It returns ErrInputClosed
// if the input ends first and any error that prevents loading the data.
func (s *Session) Run(ctx context.Context) error {
	current := collectFilters
	var it *iteration

	for current != terminated {
		var next state
		var err error

		switch current {
		case collectFilters:
			it = &iteration{id: uuid.NewString()}
			next, err = s.collectFilters(it)
		case loadData:
			next, err = s.load(it)
		case reportStats:
			next, err = s.report(ctx, it)
		case pageRawData:
			next, err = s.pageRaw(it)
		case askRestart:
			next, err = s.askRestart()
		}

		if err != nil {
			log.Debugf("[session: %s][state: %s][status: ERROR] %s", it.id, current, err.Error())
			return err
		}

		log.Debugf("[session: %s][status: OK] %s -> %s", it.id, current, next)
		current = next
	}

	return nil
}

func (s *Session) collectFilters(it *iteration) (state, error) {
	s.console.Println(greetingMessage)

	city, err := s.askUntilValid(cityPrompt, filter.ValidateCity)
	if err != nil {
		return terminated, err
	}

	month, err := s.askUntilValid(monthPrompt, filter.ValidateMonth)
	if err != nil {
		return terminated, err
	}

	day, err := s.askUntilValid(dayPrompt, filter.ValidateDay)
	if err != nil {
		return terminated, err
	}

	it.criteria, err = filter.NewCriteria(city, month, day)
	if err != nil {
		return terminated, err
	}

	s.console.Println(separator)
	return loadData, nil
}

// askUntilValid prompts until validate accepts the answer. There is no limit of attempts.
func (s *Session) askUntilValid(prompt string, validate func(string) (string, error)) (string, error) {
	for {
		answer, err := s.console.Ask(prompt)
		if err != nil {
			return "", err
		}

		value, err := validate(answer)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, filter.ErrInvalidInput) {
			return "", err
		}
		log.Debugf("[method: askUntilValid] rejected input: %s", err.Error())
		s.console.Printf("%s. \n", strings.TrimSuffix(err.Error(), ": "+filter.ErrInvalidInput.Error()))
	}
}

func (s *Session) load(it *iteration) (state, error) {
	table, err := s.loader.Load(it.criteria)
	if err != nil {
		return terminated, err
	}
	it.table = table

	catalog, err := s.loader.LoadStations(it.criteria.City())
	if err != nil {
		log.Warnf("[session: %s][city: %s] station catalog not available: %s", it.id, it.criteria.City(), err.Error())
	}
	it.catalog = catalog

	return reportStats, nil
}

// report runs the reporters in order: time, station, duration and user
func (s *Session) report(ctx context.Context, it *iteration) (state, error) {
	metadata := entities.NewMetadata(it.id, it.criteria.City(), it.criteria.Month(), it.criteria.Day())
	report := stats.NewReport(metadata, it.table.Len())

	start := time.Now()
	timeStats, err := stats.ComputeTimeStats(it.table)
	if err != nil && !errors.Is(err, stats.ErrNoTrips) {
		return terminated, err
	}
	report.Time = timeStats
	s.printTimeStats(timeStats)
	s.printElapsed(start)

	start = time.Now()
	stationStats, err := stats.ComputeStationStats(it.table, it.catalog)
	if err != nil && !errors.Is(err, stats.ErrNoTrips) {
		return terminated, err
	}
	report.Stations = stationStats
	s.printStationStats(stationStats)
	s.printElapsed(start)

	start = time.Now()
	durationStats, err := stats.ComputeDurationStats(it.table)
	if err != nil && !errors.Is(err, stats.ErrNoTrips) {
		return terminated, err
	}
	report.Duration = durationStats
	s.printDurationStats(durationStats)
	s.printElapsed(start)

	start = time.Now()
	userStats, err := stats.ComputeUserStats(it.table)
	if err != nil && !errors.Is(err, stats.ErrNoTrips) {
		return terminated, err
	}
	report.Users = userStats
	s.printUserStats(userStats)
	s.printElapsed(start)

	if err := s.publisher.Publish(ctx, report); err != nil {
		log.Errorf("[session: %s][method: report][status: ERROR] error publishing report: %s", it.id, err.Error())
	}

	answer, err := s.console.Ask(rawDataPrompt)
	if err != nil {
		return terminated, err
	}
	if answer == yesAnswer {
		return pageRawData, nil
	}
	return askRestart, nil
}

func (s *Session) pageRaw(it *iteration) (state, error) {
	page := Page(it.table, it.cursor, s.pageSize)
	if err := printPage(s.console.Writer(), it.table, it.cursor, page); err != nil {
		return terminated, err
	}
	it.cursor += s.pageSize

	answer, err := s.console.Ask(moreRawPrompt)
	if err != nil {
		return terminated, err
	}
	if answer == yesAnswer {
		return pageRawData, nil
	}
	return askRestart, nil
}

func (s *Session) askRestart() (state, error) {
	answer, err := s.console.Ask(restartPrompt)
	if err != nil {
		return terminated, err
	}
	if answer == yesAnswer {
		return collectFilters, nil
	}
	return terminated, nil
}
