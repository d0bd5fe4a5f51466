package domain

import "fmt"

type SimulationType string

const (
	SimulationType_LivestockLoad     SimulationType = "LIVESTOCK_LOAD"
	SimulationType_PastureManagement SimulationType = "PASTURE_MANAGEMENT"
	SimulationType_Production        SimulationType = "PRODUCTION"
	SimulationType_Economic          SimulationType = "ECONOMIC"
	SimulationType_Integral          SimulationType = "INTEGRAL"
)

func ParseSimulationType(s string) (SimulationType, error) {
	switch SimulationType(s) {
	case SimulationType_LivestockLoad,
		SimulationType_PastureManagement,
		SimulationType_Production,
		SimulationType_Economic,
		SimulationType_Integral:
		return SimulationType(s), nil
	}
	return "", fmt.Errorf("unknown simulation type %q", s)
}

type ScenarioType string

const (
	ScenarioType_Custom       ScenarioType = "CUSTOM"
	ScenarioType_Optimistic   ScenarioType = "OPTIMISTIC"
	ScenarioType_Conservative ScenarioType = "CONSERVATIVE"
	ScenarioType_Critical     ScenarioType = "CRITICAL"
)

func ParseScenarioType(s string) (ScenarioType, error) {
	switch ScenarioType(s) {
	case ScenarioType_Custom,
		ScenarioType_Optimistic,
		ScenarioType_Conservative,
		ScenarioType_Critical:
		return ScenarioType(s), nil
	}
	return "", fmt.Errorf("unknown scenario type %q", s)
}

type ScenarioStatus string

const (
	ScenarioStatus_Draft     ScenarioStatus = "DRAFT"
	ScenarioStatus_Executed  ScenarioStatus = "EXECUTED"
	ScenarioStatus_Converted ScenarioStatus = "CONVERTED"
)

func ParseScenarioStatus(s string) (ScenarioStatus, error) {
	switch ScenarioStatus(s) {
	case ScenarioStatus_Draft,
		ScenarioStatus_Executed,
		ScenarioStatus_Converted:
		return ScenarioStatus(s), nil
	}
	return "", fmt.Errorf("unknown scenario status %q", s)
}

type Severity string

const (
	Severity_Low      Severity = "LOW"
	Severity_Medium   Severity = "MEDIUM"
	Severity_High     Severity = "HIGH"
	Severity_Critical Severity = "CRITICAL"
)

type AlertStatus string

const (
	AlertStatus_Active       AlertStatus = "ACTIVE"
	AlertStatus_Acknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatus_Resolved     AlertStatus = "RESOLVED"
	AlertStatus_Dismissed    AlertStatus = "DISMISSED"
)

func ParseAlertStatus(s string) (AlertStatus, error) {
	switch AlertStatus(s) {
	case AlertStatus_Active,
		AlertStatus_Acknowledged,
		AlertStatus_Resolved,
		AlertStatus_Dismissed:
		return AlertStatus(s), nil
	}
	return "", fmt.Errorf("unknown alert status %q", s)
}

type AlertType string

const (
	AlertType_NegativeMargin AlertType = "NEGATIVE_MARGIN"
	AlertType_Overgrazing    AlertType = "OVERGRAZING"
	AlertType_CostOverrun    AlertType = "COST_OVERRUN"
	AlertType_LowReturn      AlertType = "LOW_RETURN"
)

// BaseReference points at the external planning record a scenario was
// derived from, e.g. a pasture plan or a production projection.
type BaseReference struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}
