package kafka

// ConsumerGroupSuffixReportRequests is appended to the configured group id.
const ConsumerGroupSuffixReportRequests = "-report-requests"
