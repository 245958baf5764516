package eos

type Reason string

const (
	ReasonRetirement          Reason = "retirement"
	ReasonDeath               Reason = "death"
	ReasonDisability          Reason = "disability"
	ReasonEmployerTermination Reason = "employer_termination"
	ReasonMutualAgreement     Reason = "mutual_agreement"
	ReasonFemaleMarriage      Reason = "female_marriage"
	ReasonContractCompletion  Reason = "contract_completion"
	ReasonEmployeeResignation Reason = "employee_resignation"
	ReasonTerminationForCause Reason = "termination_for_cause"
	ReasonProbationPeriod     Reason = "probation_period"
)

// ReasonPolicy is how a termination reason affects the benefit.
type ReasonPolicy struct {
	// FullBenefitEligible accrues years beyond the fifth at the full rate.
	FullBenefitEligible bool
	// Disqualifying yields no benefit at all.
	Disqualifying bool
}

// reasonPolicies is never written after init.
var reasonPolicies = map[Reason]ReasonPolicy{
	ReasonRetirement:          {FullBenefitEligible: true},
	ReasonDeath:               {FullBenefitEligible: true},
	ReasonDisability:          {FullBenefitEligible: true},
	ReasonEmployerTermination: {FullBenefitEligible: true},
	ReasonMutualAgreement:     {FullBenefitEligible: true},
	ReasonFemaleMarriage:      {FullBenefitEligible: true},
	ReasonContractCompletion:  {FullBenefitEligible: true},
	ReasonEmployeeResignation: {FullBenefitEligible: false},
	ReasonTerminationForCause: {Disqualifying: true},
	ReasonProbationPeriod:     {Disqualifying: true},
}

// LookupReason returns the policy for a known reason.
func LookupReason(r Reason) (ReasonPolicy, bool) {
	p, ok := reasonPolicies[r]
	return p, ok
}

// Reasons lists every accepted reason in a stable order.
func Reasons() []Reason {
	return []Reason{
		ReasonRetirement,
		ReasonDeath,
		ReasonDisability,
		ReasonEmployerTermination,
		ReasonMutualAgreement,
		ReasonFemaleMarriage,
		ReasonContractCompletion,
		ReasonEmployeeResignation,
		ReasonTerminationForCause,
		ReasonProbationPeriod,
	}
}
