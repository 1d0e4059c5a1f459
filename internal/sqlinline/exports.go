package sqlinline

const QInsertExportJob = `--sql 0f5a2f98-dd8c-418a-8b17-ddcc424ab214
insert into export_jobs(id, proposal_id, kind, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::text, 'QUEUED', now(), now())
returning id;
`

const QSelectExportJobByID = `--sql 83715660-6dc3-4429-8bad-8259f6a49f55
select id, proposal_id, kind, status, error, storage_key, created_at, updated_at
from export_jobs
where id = $1::uuid;
`

const QWorkerClaimExportJob = `--sql 0c096ddc-bb06-4f3d-8138-82795c487057
with next_job as (
    select id
    from export_jobs
    where status = 'QUEUED'
    order by created_at asc
    for update skip locked
    limit 1
),
updated as (
    update export_jobs
    set status = 'RUNNING', updated_at = now()
    where id in (select id from next_job)
    returning id, proposal_id, kind
)
select * from updated;
`

const QFinalizeExportJob = `--sql b8b79908-62f8-414e-a22b-c314c65102f5
update export_jobs
set status = $2::text,
    error = $3::text,
    storage_key = $4::text,
    updated_at = now()
where id = $1::uuid;
`
