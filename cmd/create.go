package cmd

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/GopalTomar/Cloud-Connect/internal/config"
	"github.com/GopalTomar/Cloud-Connect/internal/resources"
)

func runCreate(sess *session) {
	types := sess.manager.Types()
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(types).
		Show("Select resource type")
	if err != nil {
		return
	}

	name, ok := askResourceName()
	if !ok {
		return
	}

	params, ok := promptParams(selected, sess.cfg)
	if !ok {
		return
	}

	res, err := sess.manager.Create(selected, name, params)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Success.Printf("%s '%s' created successfully!\n", res.GetType(), res.GetName())
}

// promptParams collects the type-specific field bag. Types registered at
// runtime without a prompt set here get an empty bag and must validate it
// themselves.
func promptParams(resType string, cfg *config.Config) (map[string]interface{}, bool) {
	params := make(map[string]interface{})

	switch resType {
	case "AppService":
		runtime, err := pterm.DefaultInteractiveSelect.
			WithOptions(withDefaultFirst(resources.AppServiceRuntimes, cfg.Defaults.Runtime)).
			Show("Select runtime")
		if err != nil {
			return nil, false
		}
		region, err := pterm.DefaultInteractiveSelect.
			WithOptions(withDefaultFirst(resources.AppServiceRegions, cfg.Defaults.Region)).
			Show("Select region")
		if err != nil {
			return nil, false
		}
		replicas, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{"1", "2", "3"}).
			Show("Select replica count")
		if err != nil {
			return nil, false
		}
		params["runtime"] = runtime
		params["region"] = region
		params["replica_count"], _ = strconv.Atoi(replicas)

	case "StorageAccount":
		encrypted, err := pterm.DefaultInteractiveConfirm.Show("Enable encryption?")
		if err != nil {
			return nil, false
		}
		accessKey, err := pterm.DefaultInteractiveTextInput.
			WithMask("*").
			Show("Access key")
		if err != nil {
			return nil, false
		}
		maxSize, ok := askInt("Max size (GB)")
		if !ok {
			return nil, false
		}
		params["encryption_enabled"] = encrypted
		params["access_key"] = accessKey
		params["max_size_gb"] = maxSize

	case "CacheDB":
		ttl, ok := askInt("TTL (seconds)")
		if !ok {
			return nil, false
		}
		capacity, ok := askInt("Capacity (MB)")
		if !ok {
			return nil, false
		}
		policy, err := pterm.DefaultInteractiveSelect.
			WithOptions(withDefaultFirst(resources.KnownEvictionPolicies, cfg.Defaults.EvictionPolicy)).
			Show("Select eviction policy")
		if err != nil {
			return nil, false
		}
		params["ttl_seconds"] = ttl
		params["capacity_mb"] = capacity
		params["eviction_policy"] = policy
	}

	return params, true
}

func askInt(label string) (int, bool) {
	input, err := pterm.DefaultInteractiveTextInput.Show(label)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		pterm.Error.Println("Please enter a number.")
		return 0, false
	}
	return n, true
}

// withDefaultFirst moves def to the front of options so the select widget
// highlights it first. Unknown defaults are ignored.
func withDefaultFirst(options []string, def string) []string {
	if def == "" {
		return options
	}
	out := []string{}
	found := false
	for _, o := range options {
		if o == def {
			found = true
			continue
		}
		out = append(out, o)
	}
	if !found {
		return options
	}
	return append([]string{def}, out...)
}
