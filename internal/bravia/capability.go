package bravia

import "fmt"

// capabilityCache maps service name to API method to its supported
// version set. It is populated once during client construction and never
// mutated afterward, so concurrent reads need no locking.
type capabilityCache map[string]map[string]map[string]struct{}

func buildCapabilityCache(services []ServiceInfo) capabilityCache {
	cache := make(capabilityCache, len(services))
	for _, service := range services {
		apis := make(map[string]map[string]struct{}, len(service.APIs))
		for _, api := range service.APIs {
			versions := make(map[string]struct{}, len(api.Versions))
			for _, v := range api.Versions {
				versions[v.Version] = struct{}{}
			}
			apis[api.Name] = versions
		}
		cache[service.Service] = apis
	}
	return cache
}

// check reports whether the device supports the method at the given
// version. A failure here prevents the network call entirely.
func (c capabilityCache) check(service, method, version string) error {
	apis, ok := c[service]
	if !ok {
		return fmt.Errorf("%w: %s", ErrServiceNotFound, service)
	}
	versions, ok := apis[method]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrMethodNotFound, service, method)
	}
	if _, ok := versions[version]; !ok {
		return fmt.Errorf("%w: %s/%s version %s", ErrVersionUnsupported, service, method, version)
	}
	return nil
}
