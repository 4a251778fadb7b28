package motionplan

import "sort"

// plannerConfigIDs maps the planner names accepted by Config to the
// configuration names the external service knows them by.
var plannerConfigIDs = map[string]string{
	"SBL":        "SBLkConfigDefault",
	"EST":        "ESTkConfigDefault",
	"LBKPIECE":   "LBKPIECEkConfigDefault",
	"BKPIECE":    "BKPIECEkConfigDefault",
	"KPIECE":     "KPIECEkConfigDefault",
	"RRT":        "RRTkConfigDefault",
	"RRTConnect": "RRTConnectkConfigDefault",
	"RRTstar":    "RRTstarkConfigDefault",
	"TRRT":       "TRRTkConfigDefault",
	"PRM":        "PRMkConfigDefault",
	"PRMstar":    "PRMstarkConfigDefault",
}

// SupportedPlanners returns the accepted planner names in sorted order.
func SupportedPlanners() []string {
	names := make([]string, 0, len(plannerConfigIDs))
	for name := range plannerConfigIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func plannerConfigID(planner string) (string, error) {
	id, ok := plannerConfigIDs[planner]
	if !ok {
		return "", NewUnsupportedPlannerError(planner)
	}
	return id, nil
}
