package resources

import (
	"fmt"
	"strings"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
	"github.com/GopalTomar/Cloud-Connect/internal/utils"
)

// Allowed domains for AppService fields.
var (
	AppServiceRuntimes = []string{"python", "nodejs", "dotnet"}
	AppServiceRegions  = []string{"EastUS", "WestEurope", "CentralIndia"}
)

// AppService is a managed application service.
type AppService struct {
	core.BaseResource
	Runtime      string
	Region       string
	ReplicaCount int
}

// NewAppService validates the field bag and builds an AppService.
func NewAppService(name string, params map[string]interface{}) (core.Resource, error) {
	runtime, ok := stringParam(params, "runtime")
	if !ok || !utils.IsOneOf(runtime, AppServiceRuntimes...) {
		return nil, &core.ValidationError{Field: "runtime", Reason: "must be one of: " + strings.Join(AppServiceRuntimes, " / ")}
	}

	region, ok := stringParam(params, "region")
	if !ok || !utils.IsOneOf(region, AppServiceRegions...) {
		return nil, &core.ValidationError{Field: "region", Reason: "must be one of: " + strings.Join(AppServiceRegions, " / ")}
	}

	replicas, ok := intParam(params, "replica_count")
	if !ok || replicas < 1 || replicas > 3 {
		return nil, &core.ValidationError{Field: "replica_count", Reason: "must be 1, 2 or 3"}
	}

	return &AppService{
		BaseResource: core.NewBase(name, "AppService"),
		Runtime:      runtime,
		Region:       region,
		ReplicaCount: replicas,
	}, nil
}

func (a *AppService) Describe() string {
	return fmt.Sprintf("AppService: runtime=%s, region=%s, replicas=%d", a.Runtime, a.Region, a.ReplicaCount)
}

func (a *AppService) StartMessage() string {
	return fmt.Sprintf("AppService started in %s", a.Region)
}
