package sqlinline

const QStatsSummary = `--sql 65f3cb96-e1ba-4c9c-8afc-59d9f0b6e6bb
select
    (select count(*) from proposals) as proposals_total,
    (select count(*) from proposals where created_at >= now() - interval '24 hours') as proposals_last_24h,
    (select count(*) from export_jobs where status = 'QUEUED') as exports_queued,
    (select count(*) from export_jobs where status = 'SUCCEEDED') as exports_succeeded,
    (select count(*) from export_jobs where status = 'FAILED') as exports_failed,
    (select count(*) from export_jobs where status = 'SUCCEEDED' and updated_at >= now() - interval '24 hours') as exports_last_24h;
`

const QHealthCheck = `--sql 7ac56e52-fe27-45da-9ca7-fd02acb05071
select 1;
`
