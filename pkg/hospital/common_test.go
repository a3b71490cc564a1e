package hospital_test

import (
	. "github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"

	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/db"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital/mocks"
)

func GetMockHospitalWithMemorySqliteDialector(t *testing.T, useMockRegistry, useMockFeed, useMockLiveness bool) (
	*gomock.Controller,
	*Hospital,
	*mocks.MockIRegistry,
	*mocks.MockIFeed,
	*mocks.MockILiveness,
) {
	ctrl := gomock.NewController(t)

	mockIRegistry := mocks.NewMockIRegistry(ctrl)
	mockIFeed := mocks.NewMockIFeed(ctrl)
	mockILiveness := mocks.NewMockILiveness(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	hospitalInstance := &Hospital{Db: *dbInstance}

	registryService := hospitalInstance.GetIRegistry(RegistryOpts{})
	if useMockRegistry {
		registryService = mockIRegistry
	}

	feedService := hospitalInstance.GetIFeed()
	if useMockFeed {
		feedService = mockIFeed
	}

	livenessService := hospitalInstance.GetILiveness(LivenessOpts{})
	if useMockLiveness {
		livenessService = mockILiveness
	}

	hospitalInstance.WithServices(ServiceOpts{
		Registry: registryService,
		Feed:     feedService,
		Liveness: livenessService,
	})

	return ctrl, hospitalInstance, mockIRegistry, mockIFeed, mockILiveness
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}

	return logs
}
