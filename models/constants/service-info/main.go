package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Leopa Genetics Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Leopa leopard gecko genetics calculator API!"
	SERVICE_DESCRIPTION ServiceInfo = "Predicts offspring morph probabilities for a single leopard gecko pairing."
	SERVICE_CONTACT     ServiceInfo = "mailto:maintainers@leopa.dev"

	SERVICE_ARTIFACT    ServiceInfo = "leopa"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("dev.leopa:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
