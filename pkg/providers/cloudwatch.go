package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// CloudWatch serves logs from CloudWatch Logs and metrics from CloudWatch
// metric data.
//
// Settings: region, log_group, namespace (default "AWS/ECS").
// Credentials: access_key_id, secret_access_key.
type CloudWatch struct {
	logs      *cloudwatchlogs.Client
	metrics   *cloudwatch.Client
	logGroup  string
	namespace string
}

// NewCloudWatch builds the adapter from integration settings and decrypted
// credentials.
func NewCloudWatch(ctx context.Context, settings map[string]any, creds map[string]string) (*CloudWatch, error) {
	region, _ := settings["region"].(string)
	if region == "" {
		return nil, fmt.Errorf("cloudwatch integration is missing region")
	}
	if creds["access_key_id"] == "" || creds["secret_access_key"] == "" {
		return nil, fmt.Errorf("cloudwatch integration is missing access keys")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(creds["access_key_id"], creds["secret_access_key"], "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build aws config: %w", err)
	}

	logGroup, _ := settings["log_group"].(string)
	namespace, _ := settings["namespace"].(string)
	if namespace == "" {
		namespace = "AWS/ECS"
	}
	return &CloudWatch{
		logs:      cloudwatchlogs.NewFromConfig(cfg),
		metrics:   cloudwatch.NewFromConfig(cfg),
		logGroup:  logGroup,
		namespace: namespace,
	}, nil
}

func (c *CloudWatch) Name() string { return "cloudwatch" }

func (c *CloudWatch) Capabilities() []Capability {
	caps := []Capability{CapMetricsQuery, CapMetricsCPU, CapMetricsMemory}
	if c.logGroup != "" {
		caps = append([]Capability{CapLogsSearch, CapLogsErrors}, caps...)
	}
	return caps
}

func (c *CloudWatch) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	service := args.String("service")
	switch capability {
	case CapLogsSearch:
		return c.filterLogs(ctx, args.String("search_term"), args)
	case CapLogsErrors:
		return c.filterLogs(ctx, "?ERROR ?Error ?error ?FATAL ?panic", args)
	case CapMetricsQuery:
		metric := args.String("metric_name")
		if metric == "" {
			return "", fmt.Errorf("metric_name is required")
		}
		return c.metricData(ctx, args.StringOr("namespace", c.namespace), metric, service, "query result", args)
	case CapMetricsCPU:
		return c.metricData(ctx, c.namespace, "CPUUtilization", service, "cpu usage (%)", args)
	case CapMetricsMemory:
		return c.metricData(ctx, c.namespace, "MemoryUtilization", service, "memory usage (%)", args)
	default:
		return "", errUnsupportedCapability(c.Name(), capability)
	}
}

// Ping verifies credentials by describing log groups (or listing metrics
// when no log group is configured).
func (c *CloudWatch) Ping(ctx context.Context) error {
	if c.logGroup != "" {
		_, err := c.logs.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
			LogGroupNamePrefix: aws.String(c.logGroup),
			Limit:              aws.Int32(1),
		})
		return err
	}
	_, err := c.metrics.ListMetrics(ctx, &cloudwatch.ListMetricsInput{
		Namespace: aws.String(c.namespace),
	})
	return err
}

func (c *CloudWatch) filterLogs(ctx context.Context, pattern string, args Args) (string, error) {
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: aws.String(c.logGroup),
		StartTime:    aws.Int64(start.UnixMilli()),
		EndTime:      aws.Int64(end.UnixMilli()),
		Limit:        aws.Int32(logFormatLimit),
	}
	if pattern != "" {
		input.FilterPattern = aws.String(pattern)
	}

	out, err := c.logs.FilterLogEvents(ctx, input)
	if err != nil {
		return "", awsError("cloudwatch log query", err)
	}

	entries := make([]LogEntry, 0, len(out.Events))
	for _, ev := range out.Events {
		entries = append(entries, LogEntry{
			Service:   aws.ToString(ev.LogStreamName),
			Timestamp: time.UnixMilli(aws.ToInt64(ev.Timestamp)),
			Message:   aws.ToString(ev.Message),
		})
	}
	return formatLogs(entries), nil
}

func (c *CloudWatch) metricData(ctx context.Context, namespace, metricName, service, label string, args Args) (string, error) {
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	metric := cwtypes.Metric{
		Namespace:  aws.String(namespace),
		MetricName: aws.String(metricName),
	}
	if service != "" {
		metric.Dimensions = []cwtypes.Dimension{{
			Name:  aws.String("ServiceName"),
			Value: aws.String(service),
		}}
	}

	out, err := c.metrics.GetMetricData(ctx, &cloudwatch.GetMetricDataInput{
		StartTime: aws.Time(start),
		EndTime:   aws.Time(end),
		ScanBy:    cwtypes.ScanByTimestampAscending,
		MetricDataQueries: []cwtypes.MetricDataQuery{{
			Id: aws.String("m1"),
			MetricStat: &cwtypes.MetricStat{
				Metric: &metric,
				Period: aws.Int32(60),
				Stat:   aws.String("Average"),
			},
		}},
	})
	if err != nil {
		return "", awsError("cloudwatch metric query", err)
	}

	series := make([]MetricSeries, 0, len(out.MetricDataResults))
	for _, r := range out.MetricDataResults {
		series = append(series, MetricSeries{Service: service, Values: r.Values})
	}
	return formatMetrics(label, series), nil
}
