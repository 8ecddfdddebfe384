package eveapi

import "context"

// IndustryJob is one manufacturing/research job row.
type IndustryJob struct {
	InstallerID         string  `json:"installer_id"`
	InstallerName       string  `json:"installer_name"`
	FacilityID          string  `json:"facility_id"`
	SolarSystemID       string  `json:"solar_system_id"`
	SolarSystemName     string  `json:"solar_system_name"`
	StationID           string  `json:"station_id"`
	ActivityID          int64   `json:"activity_id"`
	BlueprintID         string  `json:"blueprint_id"`
	BlueprintTypeID     string  `json:"blueprint_type_id"`
	BlueprintTypeName   string  `json:"blueprint_type_name"`
	BlueprintLocationID string  `json:"blueprint_location_id"`
	OutputLocationID    string  `json:"output_location_id"`
	ProductTypeID       string  `json:"product_type_id"`
	ProductTypeName     string  `json:"product_type_name"`
	Runs                int64   `json:"runs"`
	LicensedRuns        int64   `json:"licensed_runs"`
	SuccessfulRuns      int64   `json:"successful_runs"`
	Cost                float64 `json:"cost"`
	Probability         float64 `json:"probability"`
	Status              int64   `json:"status"`
	TimeInSeconds       int64   `json:"time_in_seconds"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	PauseDate           string  `json:"pause_date"`
	CompletedDate       string  `json:"completed_date"`
}

// IndustryJobs fetches the character's industry jobs keyed by job id.
func (c *Client) IndustryJobs(ctx context.Context, characterID string) (Result[IndustryJob], error) {
	ctx, span := tracer.Start(ctx, "eveapi:IndustryJobs")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[IndustryJob]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epIndustryJobs, map[string]string{"characterID": id})
	if err != nil {
		return Result[IndustryJob]{}, fail(span, err)
	}

	rows := env.rowset("jobs").Map("row")
	out := collect[IndustryJob](env.meta(), len(rows))
	for jobID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[jobID] = IndustryJob{
			InstallerID:         r.str("installerID"),
			InstallerName:       r.str("installerName"),
			FacilityID:          r.str("facilityID"),
			SolarSystemID:       r.str("solarSystemID"),
			SolarSystemName:     r.str("solarSystemName"),
			StationID:           r.str("stationID"),
			ActivityID:          r.int64("activityID"),
			BlueprintID:         r.str("blueprintID"),
			BlueprintTypeID:     r.str("blueprintTypeID"),
			BlueprintTypeName:   r.str("blueprintTypeName"),
			BlueprintLocationID: r.str("blueprintLocationID"),
			OutputLocationID:    r.str("outputLocationID"),
			ProductTypeID:       r.str("productTypeID"),
			ProductTypeName:     r.str("productTypeName"),
			Runs:                r.int64("runs"),
			LicensedRuns:        r.int64("licensedRuns"),
			SuccessfulRuns:      r.int64("successfulRuns"),
			Cost:                r.float64("cost"),
			Probability:         r.float64("probability"),
			Status:              r.int64("status"),
			TimeInSeconds:       r.int64("timeInSeconds"),
			StartDate:           r.str("startDate"),
			EndDate:             r.str("endDate"),
			PauseDate:           r.str("pauseDate"),
			CompletedDate:       r.str("completedDate"),
		}
	}
	return out, nil
}
